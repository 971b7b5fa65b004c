package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var ErrUserNotFound = errors.New("user not found")

const (
	serviceSavedMessage   = "Lưu dịch vụ thành công"
	serviceDeletedMessage = "Xóa dịch vụ thành công"
	userCreatedMessage    = "Tạo người dùng thành công"
	staffUpdatedMessage   = "Cập nhật nhân viên thành công"
	staffDeletedMessage   = "Xóa nhân viên thành công"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) (*dto.ServiceListResponse, error)
	GetService(ctx context.Context, id string) (*dto.ServiceResponse, error)
	CreateService(ctx context.Context, req *dto.ServiceRequest) (string, error)
	UpdateService(ctx context.Context, id string, req *dto.ServiceRequest) (string, error)
	DeleteService(ctx context.Context, id string) (string, error)

	ListStaff(ctx context.Context) (*dto.UserListResponse, error)
	ListCustomers(ctx context.Context) (*dto.UserListResponse, error)
	GetUser(ctx context.Context, id string) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (string, error)
	UpdateStaff(ctx context.Context, id string, req *dto.UpdateStaffRequest) (string, error)
	DeleteStaff(ctx context.Context, id string) (string, error)
}

type catalogUsecase struct {
	log         *logrus.Logger
	serviceRepo repository.ServiceRepository
	userRepo    repository.UserRepository
	activity    service.ActivityService
}

func NewCatalogUsecase(
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	userRepo repository.UserRepository,
	activity service.ActivityService,
) CatalogUsecase {
	return &catalogUsecase{
		log:         log,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		activity:    activity,
	}
}

func (u *catalogUsecase) ListServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *catalogUsecase) GetService(ctx context.Context, id string) (*dto.ServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return converter.ServiceToResponse(svc), nil
}

func (u *catalogUsecase) CreateService(ctx context.Context, req *dto.ServiceRequest) (string, error) {
	return u.mutate(ctx, entity.KindService, "", "create", serviceSavedMessage, func() (string, error) {
		return u.serviceRepo.Create(ctx, converter.ServiceRequestToEntity(req))
	})
}

func (u *catalogUsecase) UpdateService(ctx context.Context, id string, req *dto.ServiceRequest) (string, error) {
	return u.mutate(ctx, entity.KindService, id, "update", serviceSavedMessage, func() (string, error) {
		return u.serviceRepo.Update(ctx, id, converter.ServiceRequestToEntity(req))
	})
}

func (u *catalogUsecase) DeleteService(ctx context.Context, id string) (string, error) {
	return u.mutate(ctx, entity.KindService, id, "delete", serviceDeletedMessage, func() (string, error) {
		return u.serviceRepo.Delete(ctx, id)
	})
}

func (u *catalogUsecase) ListStaff(ctx context.Context) (*dto.UserListResponse, error) {
	staff, err := u.userRepo.FindAllStaff(ctx)
	if err != nil {
		u.log.Warnf("Failed to list staff: %+v", err)
		return nil, err
	}
	return &dto.UserListResponse{Users: converter.UsersToResponses(staff), Total: len(staff)}, nil
}

func (u *catalogUsecase) ListCustomers(ctx context.Context) (*dto.UserListResponse, error) {
	customers, err := u.userRepo.FindAllCustomers(ctx)
	if err != nil {
		u.log.Warnf("Failed to list customers: %+v", err)
		return nil, err
	}
	return &dto.UserListResponse{Users: converter.UsersToResponses(customers), Total: len(customers)}, nil
}

func (u *catalogUsecase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find user %s: %+v", id, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

func (u *catalogUsecase) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (string, error) {
	return u.mutate(ctx, entity.KindUser, "", "create", userCreatedMessage, func() (string, error) {
		return u.userRepo.Create(ctx, &entity.NewUser{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Phone:    req.Phone,
			Role:     entity.Role(req.Role),
			Gender:   req.Gender,
			DOB:      req.DOB,
			Address:  req.Address,
		})
	})
}

func (u *catalogUsecase) UpdateStaff(ctx context.Context, id string, req *dto.UpdateStaffRequest) (string, error) {
	return u.mutate(ctx, entity.KindUser, id, "update", staffUpdatedMessage, func() (string, error) {
		return u.userRepo.UpdateStaff(ctx, id, &entity.User{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Image:   req.Image,
			Role:    entity.RoleStaff,
			Gender:  req.Gender,
			DOB:     req.DOB,
			Address: req.Address,
		})
	})
}

func (u *catalogUsecase) DeleteStaff(ctx context.Context, id string) (string, error) {
	return u.mutate(ctx, entity.KindUser, id, "delete", staffDeletedMessage, func() (string, error) {
		return u.userRepo.DeleteStaff(ctx, id)
	})
}

// mutate runs an admin catalog change, records it and drops the cached
// list it affects.
func (u *catalogUsecase) mutate(ctx context.Context, kind entity.Kind, id, action, fallback string, call func() (string, error)) (string, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return "", err
	}

	message, err := call()
	if err != nil {
		u.log.Warnf("Failed to %s %s %s: %+v", action, kind, id, err)
		u.activity.LogRejected(ctx, identity.UserID, kind, id, action, err)
		return "", err
	}
	u.activity.LogAccepted(ctx, identity.UserID, kind, id, action)

	var invalidator repository.Invalidator = u.serviceRepo
	if kind == entity.KindUser {
		invalidator = u.userRepo
	}
	if err := invalidator.Invalidate(ctx, kind, id); err != nil {
		u.log.Warnf("Failed to invalidate %s cache: %+v", kind, err)
	}
	return orDefault(message, fallback), nil
}
