package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type FavoriteRepository interface {
	Invalidator
	FindAll(ctx context.Context) ([]entity.Favorite, error)
	Add(ctx context.Context, serviceID string) (string, error)
	Remove(ctx context.Context, id string) (string, error)
}
