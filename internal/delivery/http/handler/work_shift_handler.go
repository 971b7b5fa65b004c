package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/jwt"
	"salon-booking/pkg/response"
	"salon-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type WorkShiftHandler struct {
	workShiftUsecase usecase.WorkShiftUsecase
	validator        *validator.CustomValidator
}

func NewWorkShiftHandler(workShiftUsecase usecase.WorkShiftUsecase, validator *validator.CustomValidator) *WorkShiftHandler {
	return &WorkShiftHandler{
		workShiftUsecase: workShiftUsecase,
		validator:        validator,
	}
}

// writeShiftError maps shift workflow failures to responses.
func writeShiftError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrAlreadyRegistered):
		response.Conflict(w, usecase.AlreadyRegisteredMessage)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		response.NotFound(w, "Registration not found")
	case errors.Is(err, usecase.ErrRegistrationNotCancellable):
		response.Conflict(w, "Only pending registrations can be cancelled")
	case errors.Is(err, usecase.ErrRegistrationNotOwned):
		response.Forbidden(w, "Registration does not belong to you")
	case errors.Is(err, usecase.ErrInvalidShiftTime):
		response.BadRequest(w, "Shift start time must be before end time")
	default:
		writeError(w, err, fallback)
	}
}

func (h *WorkShiftHandler) ListShifts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := parseDate(date); err != nil {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
	}

	shifts, err := h.workShiftUsecase.ListShifts(r.Context(), date)
	if err != nil {
		writeShiftError(w, err, "Failed to get shifts")
		return
	}

	response.Success(w, http.StatusOK, "Shifts retrieved successfully", shifts)
}

func (h *WorkShiftHandler) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.workShiftUsecase.CreateShift(r.Context(), &req)
	if err != nil {
		writeShiftError(w, err, "Failed to create shift")
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

func (h *WorkShiftHandler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.workShiftUsecase.DeleteShift(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeShiftError(w, err, "Failed to delete shift")
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}

func (h *WorkShiftHandler) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	registrations, err := h.workShiftUsecase.ListRegistrations(r.Context())
	if err != nil {
		writeShiftError(w, err, "Failed to get registrations")
		return
	}

	response.Success(w, http.StatusOK, "Registrations retrieved successfully", registrations)
}

// Registered reports whether the calling staff member already holds the
// shift, so the UI can disable its register button.
func (h *WorkShiftHandler) Registered(w http.ResponseWriter, r *http.Request) {
	shiftID := r.URL.Query().Get("shiftId")
	if shiftID == "" {
		response.BadRequest(w, "shiftId is required")
		return
	}

	identity, _ := jwt.IdentityFromContext(r.Context())
	registered, err := h.workShiftUsecase.IsRegistered(r.Context(), identity.UserID, shiftID)
	if err != nil {
		writeShiftError(w, err, "Failed to get registrations")
		return
	}

	response.Success(w, http.StatusOK, "", map[string]bool{"registered": registered})
}

// Register handles staff self-registration for a shift
// @Summary Register for a shift
// @Tags WorkShifts
// @Accept json
// @Produce json
// @Param request body dto.RegisterShiftRequest true "Shift to register for"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /workshifts/register [post]
func (h *WorkShiftHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.workShiftUsecase.Register(r.Context(), &req)
	if err != nil {
		writeShiftError(w, err, "Failed to register for shift")
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

func (h *WorkShiftHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.workShiftUsecase.AdminAssign(r.Context(), &req)
	if err != nil {
		writeShiftError(w, err, "Failed to assign shift")
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

func (h *WorkShiftHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.workShiftUsecase.Approve)
}

func (h *WorkShiftHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.workShiftUsecase.Reject)
}

func (h *WorkShiftHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.workShiftUsecase.Cancel)
}

func (h *WorkShiftHandler) decide(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id string) (*dto.RegistrationMutationResponse, error),
) {
	result, err := action(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeShiftError(w, err, "Failed to update registration")
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
