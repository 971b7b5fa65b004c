package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type ReviewRepository interface {
	Invalidator
	FindAll(ctx context.Context) ([]entity.Review, error)
	Create(ctx context.Context, review *entity.Review) (string, error)
}
