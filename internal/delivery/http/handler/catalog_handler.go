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

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
	validator      *validator.CustomValidator
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase, validator *validator.CustomValidator) *CatalogHandler {
	return &CatalogHandler{
		catalogUsecase: catalogUsecase,
		validator:      validator,
	}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := h.catalogUsecase.GetService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrServiceNotFound):
			response.NotFound(w, "Service not found")
		default:
			writeError(w, err, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", svc)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	message, err := h.catalogUsecase.CreateService(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create service")
		return
	}

	response.Success(w, http.StatusCreated, message, nil)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	message, err := h.catalogUsecase.UpdateService(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to update service")
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

func (h *CatalogHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	message, err := h.catalogUsecase.DeleteService(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to delete service")
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

func (h *CatalogHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.catalogUsecase.ListStaff(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get staff")
		return
	}

	response.Success(w, http.StatusOK, "Staff retrieved successfully", staff)
}

func (h *CatalogHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.catalogUsecase.ListCustomers(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get customers")
		return
	}

	response.Success(w, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *CatalogHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.catalogUsecase.GetUser(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			writeError(w, err, "Failed to get user")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

func (h *CatalogHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if !h.decode(w, r, &req) {
		return
	}

	message, err := h.catalogUsecase.CreateUser(r.Context(), &req)
	if err != nil {
		writeError(w, err, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, message, nil)
}

func (h *CatalogHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStaffRequest
	if !h.decode(w, r, &req) {
		return
	}

	message, err := h.catalogUsecase.UpdateStaff(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeError(w, err, "Failed to update staff")
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

func (h *CatalogHandler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	message, err := h.catalogUsecase.DeleteStaff(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, "Failed to delete staff")
		return
	}

	response.Success(w, http.StatusOK, message, nil)
}

// decode reads and validates a request body, answering the client itself
// when either step fails.
func (h *CatalogHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}
