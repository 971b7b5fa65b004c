package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type ServiceRepository interface {
	Invalidator
	FindAll(ctx context.Context) ([]entity.Service, error)
	FindByID(ctx context.Context, id string) (*entity.Service, error)
	Create(ctx context.Context, service *entity.Service) (string, error)
	Update(ctx context.Context, id string, service *entity.Service) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}
