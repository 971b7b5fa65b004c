package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type ContactRepository interface {
	Invalidator
	FindAll(ctx context.Context) ([]entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) (string, error)
	Update(ctx context.Context, id string, contact *entity.Contact) (string, error)
	Delete(ctx context.Context, id string) (string, error)
}
