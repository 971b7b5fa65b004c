package repository

import (
	"context"
	"encoding/json"

	"salon-booking/internal/domain/entity"
	domainRepo "salon-booking/internal/domain/repository"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

type authRepository struct {
	restRepository
}

func NewAuthRepository(client *backend.Client, cache service.ListCache, log *logrus.Logger) domainRepo.AuthRepository {
	return &authRepository{restRepository{client: client, cache: cache, log: log, kind: entity.KindUser}}
}

// Login exchanges credentials for a backend token. The backend puts token
// and user at the top level of the envelope.
func (r *authRepository) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	env, err := r.client.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	session := &entity.Session{Token: env.Token}
	if len(env.User) > 0 {
		if err := json.Unmarshal(env.User, &session.User); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (r *authRepository) Profile(ctx context.Context) (*entity.User, error) {
	env, err := r.client.Get(ctx, "/auth/profile")
	if err != nil {
		return nil, err
	}
	var user entity.User
	if err := backend.DecodeData(env.Data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *authRepository) ForgotPassword(ctx context.Context, email string) (string, error) {
	return mutate(r.client.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}))
}

func (r *authRepository) ResetPassword(ctx context.Context, token, password string) (string, error) {
	return mutate(r.client.Post(ctx, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	}))
}

func (r *authRepository) SignUp(ctx context.Context, signUp *entity.SignUp) (string, error) {
	return mutate(r.client.Post(ctx, "/auth/register", signUp))
}

// UpdateProfile sends the profile as multipart/form-data, as the backend's
// upload-capable endpoint requires.
func (r *authRepository) UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (string, error) {
	return mutate(r.client.PutForm(ctx, "/user/update-profile", update.FormFields()))
}
