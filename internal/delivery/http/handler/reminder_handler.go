package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/response"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase) *ReminderHandler {
	return &ReminderHandler{reminderUsecase: reminderUsecase}
}

// Send reminds the customers of the selected appointments
// @Summary Send appointment reminders
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendRemindersRequest true "Selected appointments"
// @Success 200 {object} response.Response
// @Router /appointments/reminders [post]
func (h *ReminderHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req dto.SendRemindersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.reminderUsecase.Send(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoAppointmentsSelected):
			response.BadRequest(w, "Vui lòng chọn ít nhất một lịch hẹn")
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Không tìm thấy lịch hẹn")
		case errors.Is(err, usecase.ErrReminderNotAllowed):
			response.Error(w, http.StatusUnprocessableEntity, "Chỉ gửi thông báo cho lịch hẹn đang chờ hoặc đã xác nhận", nil)
		default:
			writeError(w, err, "Gửi thông báo thất bại")
		}
		return
	}

	response.Success(w, http.StatusOK, result.Message, result)
}
