package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type WorkShiftRepository interface {
	Invalidator
	FindAll(ctx context.Context) ([]entity.WorkShiftRegistration, error)
	Register(ctx context.Context, reg *entity.NewWorkShiftRegistration) (string, error)
	AdminCreate(ctx context.Context, reg *entity.NewWorkShiftRegistration) (string, error)
	Approve(ctx context.Context, id string) (string, error)
	Reject(ctx context.Context, id string) (string, error)
	Cancel(ctx context.Context, id string) (string, error)
}
