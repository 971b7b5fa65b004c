package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type userRepository struct {
	restRepository
}

func NewUserRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.UserRepository {
	return &userRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindUser}}
}

func (r *userRepository) FindAllStaff(ctx context.Context) ([]entity.User, error) {
	return r.list(ctx, "/staffs", "staffs")
}

func (r *userRepository) FindAllCustomers(ctx context.Context) ([]entity.User, error) {
	return r.list(ctx, "/customers", "customers")
}

func (r *userRepository) list(ctx context.Context, path, key string) ([]entity.User, error) {
	scope := key + ":" + service.CallerScope(ctx)
	return service.CachedList(ctx, r.cache, r.log, r.kind, scope, func(ctx context.Context) ([]entity.User, error) {
		env, err := r.client.Get(ctx, path)
		if err != nil {
			return nil, err
		}
		var users []entity.User
		if err := backend.DecodeList(env.Data, key, &users); err != nil {
			return nil, err
		}
		return users, nil
	})
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	env, err := r.client.Get(ctx, pathID("/user/", id))
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := backend.DecodeData(env.Data, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.NewUser) (string, error) {
	return mutate(r.client.Post(ctx, "/user/create", user))
}

func (r *userRepository) UpdateStaff(ctx context.Context, id string, user *entity.User) (string, error) {
	return mutate(r.client.Patch(ctx, pathID("/staff/", id), user))
}

func (r *userRepository) DeleteStaff(ctx context.Context, id string) (string, error) {
	return mutate(r.client.Delete(ctx, pathID("/staff/", id)))
}
