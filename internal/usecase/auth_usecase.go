package usecase

import (
	"context"
	"errors"
	"strings"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrMissingToken = errors.New("backend did not return a token")

const (
	resetLinkSentMessage  = "Đã gửi liên kết đặt lại mật khẩu"
	passwordResetMessage  = "Đặt lại mật khẩu thành công"
	signedUpMessage       = "Đăng ký thành công! Vui lòng kiểm tra email để xác thực"
	profileUpdatedMessage = "Cập nhật thành công!"
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context) (*dto.UserResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (string, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (string, error)
	SignUp(ctx context.Context, req *dto.SignUpRequest) (string, error)
	UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, string, error)
}

type authUsecase struct {
	log      *logrus.Logger
	authRepo repository.AuthRepository
}

func NewAuthUsecase(log *logrus.Logger, authRepo repository.AuthRepository) AuthUsecase {
	return &authUsecase{
		log:      log,
		authRepo: authRepo,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	session, err := u.authRepo.Login(ctx, req.Email, req.Password)
	if err != nil {
		u.log.Warnf("Login failed for %s: %+v", req.Email, err)
		return nil, err
	}
	if session.Token == "" {
		return nil, ErrMissingToken
	}

	u.log.Infof("User %s logged in as %s", session.User.ID, session.User.Role)
	return &dto.LoginResponse{
		Token: session.Token,
		User:  *converter.UserToResponse(&session.User),
	}, nil
}

func (u *authUsecase) Profile(ctx context.Context) (*dto.UserResponse, error) {
	if _, err := currentIdentity(ctx); err != nil {
		return nil, err
	}

	user, err := u.authRepo.Profile(ctx)
	if err != nil {
		u.log.Warnf("Failed to load profile: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) (string, error) {
	message, err := u.authRepo.ForgotPassword(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Forgot password failed for %s: %+v", req.Email, err)
		return "", err
	}
	return orDefault(message, resetLinkSentMessage), nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (string, error) {
	message, err := u.authRepo.ResetPassword(ctx, req.Token, req.Password)
	if err != nil {
		u.log.Warnf("Reset password failed: %+v", err)
		return "", err
	}
	return orDefault(message, passwordResetMessage), nil
}

// SignUp registers a customer account. The form is checked locally first so
// a rejected form never reaches the backend. The backend then mails a
// verification link.
func (u *authUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (string, error) {
	form := entity.SignUp{
		Name:     strings.TrimSpace(req.Name),
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if errs := ValidateSignUp(form); len(errs) > 0 {
		return "", errs
	}

	if _, err := u.authRepo.SignUp(ctx, &form); err != nil {
		u.log.Warnf("Sign up failed for %s: %+v", form.Email, err)
		return "", err
	}

	u.log.Infof("Customer %s signed up", form.Email)
	return signedUpMessage, nil
}

// UpdateProfile saves the caller's own profile and returns it reloaded. A
// failed reload still reports the update as saved.
func (u *authUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.UserResponse, string, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, "", err
	}

	update := &entity.ProfileUpdate{
		UserID:  identity.UserID,
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
		DOB:     req.DOB,
		Gender:  req.Gender,
	}
	if _, err := u.authRepo.UpdateProfile(ctx, update); err != nil {
		u.log.Warnf("Failed to update profile of %s: %+v", identity.UserID, err)
		return nil, "", err
	}

	if err := u.authRepo.Invalidate(ctx, entity.KindUser, identity.UserID); err != nil {
		u.log.Warnf("Failed to invalidate user cache: %+v", err)
	}

	user, err := u.authRepo.Profile(ctx)
	if err != nil || user == nil {
		u.log.Warnf("Failed to reload profile of %s: %+v", identity.UserID, err)
		return nil, profileUpdatedMessage, nil
	}
	return converter.UserToResponse(user), profileUpdatedMessage, nil
}
