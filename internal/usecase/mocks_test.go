package usecase

import (
	"context"

	"salon-booking/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) Invalidate(ctx context.Context, kind entity.Kind, id string) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

type mockUserRepository struct {
	mockInvalidator
}

func (m *mockUserRepository) FindAllStaff(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) FindAllCustomers(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.NewUser) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) UpdateStaff(ctx context.Context, id string, user *entity.User) (string, error) {
	args := m.Called(ctx, id, user)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) DeleteStaff(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockServiceRepository struct {
	mockInvalidator
}

func (m *mockServiceRepository) FindAll(ctx context.Context) ([]entity.Service, error) {
	args := m.Called(ctx)
	services, _ := args.Get(0).([]entity.Service)
	return services, args.Error(1)
}

func (m *mockServiceRepository) FindByID(ctx context.Context, id string) (*entity.Service, error) {
	args := m.Called(ctx, id)
	svc, _ := args.Get(0).(*entity.Service)
	return svc, args.Error(1)
}

func (m *mockServiceRepository) Create(ctx context.Context, svc *entity.Service) (string, error) {
	args := m.Called(ctx, svc)
	return args.String(0), args.Error(1)
}

func (m *mockServiceRepository) Update(ctx context.Context, id string, svc *entity.Service) (string, error) {
	args := m.Called(ctx, id, svc)
	return args.String(0), args.Error(1)
}

func (m *mockServiceRepository) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockAppointmentRepository struct {
	mockInvalidator
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appointment *entity.NewAppointment) (string, error) {
	args := m.Called(ctx, appointment)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	args := m.Called(ctx)
	appointments, _ := args.Get(0).([]entity.Appointment)
	return appointments, args.Error(1)
}

func (m *mockAppointmentRepository) Confirm(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) Complete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) Cancel(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockAppointmentRepository) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockReviewRepository struct {
	mockInvalidator
}

func (m *mockReviewRepository) FindAll(ctx context.Context) ([]entity.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]entity.Review)
	return reviews, args.Error(1)
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) (string, error) {
	args := m.Called(ctx, review)
	return args.String(0), args.Error(1)
}

type mockContactRepository struct {
	mockInvalidator
}

func (m *mockContactRepository) FindAll(ctx context.Context) ([]entity.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]entity.Contact)
	return contacts, args.Error(1)
}

func (m *mockContactRepository) Create(ctx context.Context, contact *entity.Contact) (string, error) {
	args := m.Called(ctx, contact)
	return args.String(0), args.Error(1)
}

func (m *mockContactRepository) Update(ctx context.Context, id string, contact *entity.Contact) (string, error) {
	args := m.Called(ctx, id, contact)
	return args.String(0), args.Error(1)
}

func (m *mockContactRepository) Delete(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type mockAuthRepository struct {
	mockInvalidator
}

func (m *mockAuthRepository) Login(ctx context.Context, email, password string) (*entity.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*entity.Session)
	return session, args.Error(1)
}

func (m *mockAuthRepository) Profile(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockAuthRepository) ForgotPassword(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func (m *mockAuthRepository) ResetPassword(ctx context.Context, token, password string) (string, error) {
	args := m.Called(ctx, token, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthRepository) SignUp(ctx context.Context, signUp *entity.SignUp) (string, error) {
	args := m.Called(ctx, signUp)
	return args.String(0), args.Error(1)
}

func (m *mockAuthRepository) UpdateProfile(ctx context.Context, update *entity.ProfileUpdate) (string, error) {
	args := m.Called(ctx, update)
	return args.String(0), args.Error(1)
}

type mockFavoriteRepository struct {
	mockInvalidator
}

func (m *mockFavoriteRepository) FindAll(ctx context.Context) ([]entity.Favorite, error) {
	args := m.Called(ctx)
	favorites, _ := args.Get(0).([]entity.Favorite)
	return favorites, args.Error(1)
}

func (m *mockFavoriteRepository) Add(ctx context.Context, serviceID string) (string, error) {
	args := m.Called(ctx, serviceID)
	return args.String(0), args.Error(1)
}

func (m *mockFavoriteRepository) Remove(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}
