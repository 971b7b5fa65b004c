package converter

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}
	return &dto.ReviewResponse{
		ID:            review.ID,
		AppointmentID: review.AppointmentID.ID,
		CustomerID:    review.CustomerID.ID,
		CustomerName:  review.CustomerID.Name,
		ServiceID:     review.ServiceID.ID,
		ServiceName:   review.ServiceID.Name,
		StaffID:       review.StaffID.ID,
		Rating:        review.Rating,
		Comment:       review.Comment,
	}
}

func ReviewsToResponses(reviews []entity.Review) []dto.ReviewResponse {
	responses := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = *ReviewToResponse(&reviews[i])
	}
	return responses
}

func ContactToResponse(contact *entity.Contact) *dto.ContactResponse {
	if contact == nil {
		return nil
	}
	return &dto.ContactResponse{
		ID:      contact.ID,
		Name:    contact.Name,
		Email:   contact.Email,
		Phone:   contact.Phone,
		Message: contact.Message,
		Status:  contact.Status,
	}
}

func ContactsToResponses(contacts []entity.Contact) []dto.ContactResponse {
	responses := make([]dto.ContactResponse, len(contacts))
	for i := range contacts {
		responses[i] = *ContactToResponse(&contacts[i])
	}
	return responses
}
