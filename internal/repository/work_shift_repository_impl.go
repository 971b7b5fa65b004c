package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type workShiftRepository struct {
	restRepository
}

func NewWorkShiftRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.WorkShiftRepository {
	return &workShiftRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindWorkShift}}
}

// FindAll returns every registration the caller may see: their own for
// staff, all of them for admins.
func (r *workShiftRepository) FindAll(ctx context.Context) ([]entity.WorkShiftRegistration, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, service.CallerScope(ctx), func(ctx context.Context) ([]entity.WorkShiftRegistration, error) {
		env, err := r.client.Get(ctx, "/workshifts")
		if err != nil {
			return nil, err
		}
		var registrations []entity.WorkShiftRegistration
		if err := backend.DecodeList(env.Data, "workShifts", &registrations); err != nil {
			return nil, err
		}
		return registrations, nil
	})
}

func (r *workShiftRepository) Register(ctx context.Context, reg *entity.NewWorkShiftRegistration) (string, error) {
	return mutate(r.client.Post(ctx, "/workshifts/register", reg))
}

func (r *workShiftRepository) AdminCreate(ctx context.Context, reg *entity.NewWorkShiftRegistration) (string, error) {
	return mutate(r.client.Post(ctx, "/workshifts/create", reg))
}

func (r *workShiftRepository) Approve(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/workshifts/", id), nil))
}

func (r *workShiftRepository) Reject(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/workshifts/reject/", id), nil))
}

func (r *workShiftRepository) Cancel(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/workshifts/cancel/", id), nil))
}
