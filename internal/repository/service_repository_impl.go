package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type serviceRepository struct {
	restRepository
}

func NewServiceRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.ServiceRepository {
	return &serviceRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindService}}
}

// FindAll is public; every caller shares one cached copy.
func (r *serviceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, "public", func(ctx context.Context) ([]entity.Service, error) {
		env, err := r.client.Get(ctx, "/services")
		if err != nil {
			return nil, err
		}
		var services []entity.Service
		if err := backend.DecodeList(env.Data, "services", &services); err != nil {
			return nil, err
		}
		return services, nil
	})
}

func (r *serviceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	env, err := r.client.Get(ctx, pathID("/services/", id))
	if err != nil {
		return nil, err
	}
	var svc entity.Service
	if err := backend.DecodeData(env.Data, &svc); err != nil {
		return nil, err
	}
	if svc.ID == "" {
		return nil, nil
	}
	return &svc, nil
}

func (r *serviceRepository) Create(ctx context.Context, svc *entity.Service) (string, error) {
	return mutate(r.client.Post(ctx, "/services", svc))
}

func (r *serviceRepository) Update(ctx context.Context, id string, svc *entity.Service) (string, error) {
	return mutate(r.client.Put(ctx, pathID("/services/", id), svc))
}

func (r *serviceRepository) Delete(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/service/", id)))
}
