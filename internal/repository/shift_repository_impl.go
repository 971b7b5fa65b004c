package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type shiftRepository struct {
	restRepository
}

func NewShiftRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.ShiftRepository {
	return &shiftRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindShift}}
}

func (r *shiftRepository) Create(ctx context.Context, shift *entity.NewShift) (string, error) {
	return mutate(r.client.Post(ctx, "/shifts/create", shift))
}

func (r *shiftRepository) FindAll(ctx context.Context) ([]entity.Shift, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, service.CallerScope(ctx), func(ctx context.Context) ([]entity.Shift, error) {
		env, err := r.client.Get(ctx, "/shifts")
		if err != nil {
			return nil, err
		}
		var shifts []entity.Shift
		if err := backend.DecodeList(env.Data, "shifts", &shifts); err != nil {
			return nil, err
		}
		return shifts, nil
	})
}

func (r *shiftRepository) Delete(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/shifts/delete/", id)))
}
