package converter

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	rating := service.AverageRating
	if rating == 0 {
		rating = service.Rating
	}

	return &dto.ServiceResponse{
		ID:             service.ID,
		Name:           service.Name,
		Description:    service.Description,
		Price:          service.Price,
		FormattedPrice: FormatPrice(service.Price),
		Duration:       service.Duration,
		Image:          service.Image,
		Rating:         rating,
		CategoryID:     service.Category.ID,
		CategoryName:   service.Category.Name,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

func ServiceRequestToEntity(req *dto.ServiceRequest) *entity.Service {
	return &entity.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Image:       req.Image,
		Category:    entity.Ref{ID: req.CategoryID},
	}
}

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Image:   user.Image,
		Role:    string(user.Role),
		Gender:  user.Gender,
		DOB:     user.DOB,
		Address: user.Address,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
