package usecase

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteUsecase() (FavoriteUsecase, *mockFavoriteRepository) {
	repo := &mockFavoriteRepository{}
	return NewFavoriteUsecase(quietLogger(), repo, service.NewActivityService(quietLogger())), repo
}

func TestFavoriteUsecase_List(t *testing.T) {
	uc, repo := newFavoriteUsecase()
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{
		{ID: "f1", ServiceID: entity.Ref{ID: "sv1", Name: "Cắt tóc nam"}},
	}, nil)

	list, err := uc.List(asUser("cust-1", entity.RoleCustomer))

	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, "sv1", list.Favorites[0].ServiceID)
	assert.Equal(t, "Cắt tóc nam", list.Favorites[0].ServiceName)
}

func TestFavoriteUsecase_ListNeedsLogin(t *testing.T) {
	uc, repo := newFavoriteUsecase()

	_, err := uc.List(context.Background())

	assert.ErrorIs(t, err, ErrUnauthenticated)
	repo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestFavoriteUsecase_AddRejectsDuplicate(t *testing.T) {
	uc, repo := newFavoriteUsecase()
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{{ID: "f1", ServiceID: entity.Ref{ID: "sv1"}}}, nil)

	_, err := uc.Add(asUser("cust-1", entity.RoleCustomer), &dto.FavoriteRequest{ServiceID: "sv1"})

	assert.ErrorIs(t, err, ErrAlreadyFavorite)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestFavoriteUsecase_AddRefreshesList(t *testing.T) {
	uc, repo := newFavoriteUsecase()
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{}, nil).Once()
	repo.On("Add", mock.Anything, "sv2").Return("", nil)
	repo.On("Invalidate", mock.Anything, entity.KindFavorite, "").Return(nil)
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{{ID: "f2", ServiceID: entity.Ref{ID: "sv2"}}}, nil).Once()

	resp, err := uc.Add(asUser("cust-1", entity.RoleCustomer), &dto.FavoriteRequest{ServiceID: " sv2 "})

	require.NoError(t, err)
	assert.Equal(t, "Đã thêm vào yêu thích", resp.Message)
	assert.True(t, resp.IsFavorite)
	assert.False(t, resp.Stale)
	require.NotNil(t, resp.Favorites)
	assert.Equal(t, 1, resp.Favorites.Total)
	repo.AssertExpectations(t)
}

func TestFavoriteUsecase_ToggleRemovesExisting(t *testing.T) {
	uc, repo := newFavoriteUsecase()
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{{ID: "f1", ServiceID: entity.Ref{ID: "sv1"}}}, nil).Once()
	repo.On("Remove", mock.Anything, "f1").Return("", nil)
	repo.On("Invalidate", mock.Anything, entity.KindFavorite, "").Return(nil)
	repo.On("FindAll", mock.Anything).Return(nil, errors.New("backend down")).Once()

	resp, err := uc.Toggle(asUser("cust-1", entity.RoleCustomer), &dto.FavoriteRequest{ServiceID: "sv1"})

	require.NoError(t, err)
	assert.Equal(t, "Đã bỏ yêu thích", resp.Message)
	assert.False(t, resp.IsFavorite)
	assert.True(t, resp.Stale)
	assert.Nil(t, resp.Favorites)
}

func TestFavoriteUsecase_RemoveUnknown(t *testing.T) {
	uc, repo := newFavoriteUsecase()
	repo.On("FindAll", mock.Anything).Return([]entity.Favorite{{ID: "f1", ServiceID: entity.Ref{ID: "sv1"}}}, nil)

	_, err := uc.Remove(asUser("cust-1", entity.RoleCustomer), "f9")

	assert.ErrorIs(t, err, ErrFavoriteNotFound)
	repo.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}
