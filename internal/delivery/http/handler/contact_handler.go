package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/response"
	"salon-booking/pkg/validator"

	"github.com/gorilla/mux"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
	}
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.contactUsecase.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to send contact")
		return
	}

	response.Success(w, http.StatusCreated, message, nil)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactUsecase.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get contacts")
		return
	}

	response.Success(w, http.StatusOK, "Contacts retrieved successfully", contacts)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	message, err := h.contactUsecase.UpdateStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrContactNotFound):
			response.NotFound(w, "Contact not found")
		default:
			writeError(w, err, "Failed to update contact")
		}
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	message, err := h.contactUsecase.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to delete contact")
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}
