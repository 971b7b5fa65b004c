package repository

import (
	"context"
	"net/url"

	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

// restRepository holds what every backend-backed repository needs.
type restRepository struct {
	client *backend.Client
	cache  service.ListCache
	log    *logrus.Logger
	kind   entity.Kind
}

func (r *restRepository) Invalidate(ctx context.Context, kind entity.Kind, id string) error {
	return service.InvalidateList(ctx, r.cache, kind, id)
}

// mutate runs a state-changing call and returns the backend's message.
func mutate(env *backend.Envelope, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func pathID(prefix, id string) string {
	return prefix + url.PathEscape(id)
}
