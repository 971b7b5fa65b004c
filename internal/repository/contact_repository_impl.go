package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type contactRepository struct {
	restRepository
}

func NewContactRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.ContactRepository {
	return &contactRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindContact}}
}

func (r *contactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	return service.CachedList(ctx, r.cache, r.log, r.kind, service.CallerScope(ctx), func(ctx context.Context) ([]entity.Contact, error) {
		env, err := r.client.Get(ctx, "/contacts")
		if err != nil {
			return nil, err
		}
		var contacts []entity.Contact
		if err := backend.DecodeList(env.Data, "contacts", &contacts); err != nil {
			return nil, err
		}
		return contacts, nil
	})
}

func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) (string, error) {
	return mutate(r.client.Post(ctx, "/contact/create", contact))
}

func (r *contactRepository) Update(ctx context.Context, id string, contact *entity.Contact) (string, error) {
	return mutate(r.client.Patch(ctx, pathID("/contact/", id), contact))
}

func (r *contactRepository) Delete(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/contact/", id)))
}
