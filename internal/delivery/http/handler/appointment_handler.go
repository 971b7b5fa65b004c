package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/response"
	"salon-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book handles a booking form submission
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Booking form"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.Book(r.Context(), &req)
	if err != nil {
		var validationErrs usecase.ValidationErrors
		switch {
		case errors.As(err, &validationErrs):
			response.ValidationError(w, validationErrs.Messages())
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, "Không tìm thấy dịch vụ")
		default:
			writeError(w, err, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

// List handles the admin and staff appointment table
// @Summary List appointments
// @Tags Appointments
// @Produce json
// @Param status query string false "all, pending, confirmed, completed or cancelled"
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.Atoi(query.Get("page"))
	limit, _ := strconv.Atoi(query.Get("limit"))

	result, err := h.appointmentUsecase.List(r.Context(), dto.AppointmentFilter{
		Status: query.Get("status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatusFilter):
			response.BadRequest(w, "Invalid status filter")
		default:
			writeError(w, err, "Failed to get appointments")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", result.Appointments, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		Total:      int64(result.Total),
		TotalPages: result.TotalPages,
	})
}

// Mine splits the caller's appointments into upcoming and history.
func (h *AppointmentHandler) Mine(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date != "" {
		if _, err := parseDate(date); err != nil {
			response.BadRequest(w, "Invalid date format, use YYYY-MM-DD")
			return
		}
	}

	result, err := h.appointmentUsecase.MyAppointments(r.Context(), date)
	if err != nil {
		writeError(w, err, "Failed to get appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", result)
}

func (h *AppointmentHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.Confirm)
}

func (h *AppointmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.Complete)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.Cancel)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.appointmentUsecase.Delete)
}

func (h *AppointmentHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, id string) (*dto.AppointmentMutationResponse, error),
) {
	id := mux.Vars(r)["id"]
	if id == "" {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	result, err := action(r.Context(), id)
	if err != nil {
		writeError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
