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

type FavoriteHandler struct {
	favoriteUsecase usecase.FavoriteUsecase
	validator       *validator.CustomValidator
}

func NewFavoriteHandler(favoriteUsecase usecase.FavoriteUsecase, validator *validator.CustomValidator) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUsecase: favoriteUsecase,
		validator:       validator,
	}
}

func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.favoriteUsecase.List(r.Context())
	if err != nil {
		writeError(w, err, "Failed to get favorites")
		return
	}

	response.Success(w, http.StatusOK, "Favorites retrieved successfully", favorites)
}

func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.favoriteUsecase.Add(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, result.Message, result)
}

// Toggle adds or removes a service depending on whether it is saved already.
func (h *FavoriteHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.favoriteUsecase.Toggle(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}

func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	result, err := h.favoriteUsecase.Remove(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}

func (h *FavoriteHandler) decode(w http.ResponseWriter, r *http.Request) (*dto.FavoriteRequest, bool) {
	var req dto.FavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}

func (h *FavoriteHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrAlreadyFavorite):
		response.Conflict(w, "Dịch vụ đã có trong danh sách yêu thích")
	case errors.Is(err, usecase.ErrFavoriteNotFound):
		response.NotFound(w, "Không tìm thấy mục yêu thích")
	default:
		writeError(w, err, "Lỗi cập nhật yêu thích")
	}
}
