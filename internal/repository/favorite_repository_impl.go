package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type favoriteRepository struct {
	restRepository
}

func NewFavoriteRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.FavoriteRepository {
	return &favoriteRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindFavorite}}
}

// FindAll lists the caller's favorites. The backend returns them under a
// top-level favorites key rather than data.
func (r *favoriteRepository) FindAll(ctx context.Context) ([]entity.Favorite, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, service.CallerScope(ctx), func(ctx context.Context) ([]entity.Favorite, error) {
		env, err := r.client.Get(ctx, "/favorites")
		if err != nil {
			return nil, err
		}
		raw := env.Favorites
		if len(raw) == 0 {
			raw = env.Data
		}
		favorites := []entity.Favorite{}
		if err := backend.DecodeList(raw, "favorites", &favorites); err != nil {
			return nil, err
		}
		return favorites, nil
	})
}

func (r *favoriteRepository) Add(ctx context.Context, serviceID string) (string, error) {
	return mutate(r.client.Post(ctx, "/favorites", map[string]string{"serviceId": serviceID}))
}

func (r *favoriteRepository) Remove(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/favorites/", id)))
}
