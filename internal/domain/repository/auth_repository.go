package repository

import (
	"context"

	"salon-booking/internal/domain/entity"
)

type AuthRepository interface {
	Invalidator
	Login(ctx context.Context, email, password string) (*entity.Session, error)
	Profile(ctx context.Context) (*entity.User, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, password string) (string, error)
	SignUp(ctx context.Context, signUp *entity.SignUp) (string, error)
	UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (string, error)
}
