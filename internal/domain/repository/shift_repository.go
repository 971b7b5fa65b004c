package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type ShiftRepository interface {
	Invalidator
	Create(ctx context.Context, shift *entity.NewShift) (string, error)
	FindAll(ctx context.Context) ([]entity.Shift, error)
	Delete(ctx context.Context, id string) (string, error)
}
