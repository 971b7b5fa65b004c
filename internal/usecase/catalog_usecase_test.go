package usecase

import (
	"context"
	"testing"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalog() (CatalogUsecase, *mockServiceRepository, *mockUserRepository) {
	serviceRepo := &mockServiceRepository{}
	userRepo := &mockUserRepository{}
	return NewCatalogUsecase(quietLogger(), serviceRepo, userRepo, service.NewActivityService(quietLogger())), serviceRepo, userRepo
}

func TestCatalogUsecase_GetService(t *testing.T) {
	uc, serviceRepo, _ := newCatalog()
	serviceRepo.On("FindByID", mock.Anything, "sv1").Return(&entity.Service{ID: "sv1", Name: "Cắt tóc nam", Price: 150000, AverageRating: 4.5}, nil)
	serviceRepo.On("FindByID", mock.Anything, "missing").Return(nil, nil)

	svc, err := uc.GetService(context.Background(), "sv1")
	require.NoError(t, err)
	assert.Equal(t, "150.000 VND", svc.FormattedPrice)
	assert.Equal(t, 4.5, svc.Rating)

	_, err = uc.GetService(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalogUsecase_UpdateServiceInvalidates(t *testing.T) {
	uc, serviceRepo, _ := newCatalog()
	serviceRepo.On("Update", mock.Anything, "sv1", mock.MatchedBy(func(s *entity.Service) bool {
		return s.Name == "Gội đầu" && s.Price == 50000 && s.Category.ID == "cat1"
	})).Return("", nil)
	serviceRepo.On("Invalidate", mock.Anything, entity.KindService, "sv1").Return(nil)

	message, err := uc.UpdateService(asUser("admin-1", entity.RoleAdmin), "sv1", &dto.ServiceRequest{
		Name: "Gội đầu", Price: 50000, Duration: 20, CategoryID: "cat1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lưu dịch vụ thành công", message)
	serviceRepo.AssertExpectations(t)
}

func TestCatalogUsecase_DeleteStaffRejected(t *testing.T) {
	uc, _, userRepo := newCatalog()
	refused := &backend.APIError{StatusCode: 403, Message: "Không có quyền"}
	userRepo.On("DeleteStaff", mock.Anything, "st1").Return("", refused)

	_, err := uc.DeleteStaff(asUser("admin-1", entity.RoleAdmin), "st1")

	assert.ErrorIs(t, err, refused)
	userRepo.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything, mock.Anything)
}

func TestCatalogUsecase_CreateUser(t *testing.T) {
	uc, _, userRepo := newCatalog()
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.NewUser) bool {
		return u.Email == "an@salon.vn" && u.Role == entity.RoleStaff
	})).Return("User created", nil)
	userRepo.On("Invalidate", mock.Anything, entity.KindUser, "").Return(nil)

	message, err := uc.CreateUser(asUser("admin-1", entity.RoleAdmin), &dto.CreateUserRequest{
		Name: "An", Email: "an@salon.vn", Password: "secret1", Role: "staff",
	})

	require.NoError(t, err)
	assert.Equal(t, "User created", message)
}

func TestCatalogUsecase_MutationsRequireIdentity(t *testing.T) {
	uc, serviceRepo, _ := newCatalog()

	_, err := uc.DeleteService(context.Background(), "sv1")

	assert.ErrorIs(t, err, ErrUnauthenticated)
	serviceRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalogUsecase_ListStaff(t *testing.T) {
	uc, _, userRepo := newCatalog()
	userRepo.On("FindAllStaff", mock.Anything).Return([]entity.User{{ID: "st1", Name: "Minh", Role: entity.RoleStaff}}, nil)

	list, err := uc.ListStaff(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "staff", list.Users[0].Role)
}
