package converter

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its view, attaching
// the actions a viewer with role may trigger.
func AppointmentToResponse(appointment *entity.Appointment, role entity.Role) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	actions := appointment.AvailableActions(role)
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = string(action)
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		CustomerID:     appointment.CustomerID.ID,
		CustomerName:   appointment.CustomerID.Name,
		CustomerPhone:  appointment.CustomerID.Phone,
		CustomerImage:  appointment.CustomerID.Image,
		StaffID:        appointment.StaffID.ID,
		StaffName:      appointment.StaffID.Name,
		ServiceID:      appointment.ServiceID.ID,
		ServiceName:    appointment.ServiceID.Name,
		Date:           appointment.Day(),
		StartTime:      appointment.StartTime,
		TotalPrice:     appointment.TotalPrice,
		FormattedPrice: FormatPrice(appointment.TotalPrice),
		Status:         string(appointment.Status),
		Notes:          appointment.Notes,
		IsReviewed:     appointment.IsReviewed,
		CanReview:      appointment.CanReview(),
		Actions:        names,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to views.
func AppointmentsToResponses(appointments []entity.Appointment, role entity.Role) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i], role)
	}
	return responses
}
