package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

// Invalidator drops cached reads of a backend collection so the next read
// goes to the backend. id names the mutated record; an empty id means the
// whole collection changed.
type Invalidator interface {
	Invalidate(ctx context.Context, kind entity.Kind, id string) error
}
