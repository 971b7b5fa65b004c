package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type UserRepository interface {
	Invalidator
	FindAllStaff(ctx context.Context) ([]entity.User, error)
	FindAllCustomers(ctx context.Context) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	Create(ctx context.Context, user *entity.NewUser) (string, error)
	UpdateStaff(ctx context.Context, id string, user *entity.User) (string, error)
	DeleteStaff(ctx context.Context, id string) (string, error)
}
