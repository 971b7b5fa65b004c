package usecase

import (
	"context"
	"errors"
	"strings"

	"salon-booking/internal/converter"
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
	"salon-booking/internal/domain/repository"
	"salon-booking/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadyFavorite  = errors.New("service is already a favorite")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

const (
	favoriteAddedMessage   = "Đã thêm vào yêu thích"
	favoriteRemovedMessage = "Đã bỏ yêu thích"
)

type FavoriteUsecase interface {
	List(ctx context.Context) (*dto.FavoriteListResponse, error)
	Add(ctx context.Context, req *dto.FavoriteRequest) (*dto.FavoriteMutationResponse, error)
	Remove(ctx context.Context, id string) (*dto.FavoriteMutationResponse, error)
	Toggle(ctx context.Context, req *dto.FavoriteRequest) (*dto.FavoriteMutationResponse, error)
}

type favoriteUsecase struct {
	log          *logrus.Logger
	favoriteRepo repository.FavoriteRepository
	activity     service.ActivityService
}

func NewFavoriteUsecase(log *logrus.Logger, favoriteRepo repository.FavoriteRepository, activity service.ActivityService) FavoriteUsecase {
	return &favoriteUsecase{
		log:          log,
		favoriteRepo: favoriteRepo,
		activity:     activity,
	}
}

func (u *favoriteUsecase) List(ctx context.Context) (*dto.FavoriteListResponse, error) {
	if _, err := currentIdentity(ctx); err != nil {
		return nil, err
	}

	favorites, err := u.favoriteRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list favorites: %+v", err)
		return nil, err
	}
	return converter.FavoritesToListResponse(favorites), nil
}

func (u *favoriteUsecase) Add(ctx context.Context, req *dto.FavoriteRequest) (*dto.FavoriteMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	favorites, err := u.favoriteRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list favorites: %+v", err)
		return nil, err
	}
	if _, ok := entity.FindFavorite(favorites, serviceID); ok {
		return nil, ErrAlreadyFavorite
	}

	return u.add(ctx, identity.UserID, serviceID)
}

func (u *favoriteUsecase) Remove(ctx context.Context, id string) (*dto.FavoriteMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	favorites, err := u.favoriteRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list favorites: %+v", err)
		return nil, err
	}
	found := false
	for _, fav := range favorites {
		if fav.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrFavoriteNotFound
	}

	return u.remove(ctx, identity.UserID, id)
}

// Toggle adds the service to the caller's favorites, or removes it if it is
// already there.
func (u *favoriteUsecase) Toggle(ctx context.Context, req *dto.FavoriteRequest) (*dto.FavoriteMutationResponse, error) {
	identity, err := currentIdentity(ctx)
	if err != nil {
		return nil, err
	}

	serviceID := strings.TrimSpace(req.ServiceID)
	favorites, err := u.favoriteRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list favorites: %+v", err)
		return nil, err
	}
	if existing, ok := entity.FindFavorite(favorites, serviceID); ok {
		return u.remove(ctx, identity.UserID, existing.ID)
	}
	return u.add(ctx, identity.UserID, serviceID)
}

func (u *favoriteUsecase) add(ctx context.Context, userID, serviceID string) (*dto.FavoriteMutationResponse, error) {
	message, err := u.favoriteRepo.Add(ctx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to favorite service %s: %+v", serviceID, err)
		u.activity.LogRejected(ctx, userID, entity.KindFavorite, serviceID, "add", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, userID, entity.KindFavorite, serviceID, "add")
	resp := u.refresh(ctx, orDefault(message, favoriteAddedMessage))
	resp.IsFavorite = true
	return resp, nil
}

func (u *favoriteUsecase) remove(ctx context.Context, userID, id string) (*dto.FavoriteMutationResponse, error) {
	message, err := u.favoriteRepo.Remove(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to remove favorite %s: %+v", id, err)
		u.activity.LogRejected(ctx, userID, entity.KindFavorite, id, "remove", err)
		return nil, err
	}

	u.activity.LogAccepted(ctx, userID, entity.KindFavorite, id, "remove")
	return u.refresh(ctx, orDefault(message, favoriteRemovedMessage)), nil
}

// refresh invalidates the caller's cached favorites and reloads them. A
// failed reload marks the response stale.
func (u *favoriteUsecase) refresh(ctx context.Context, message string) *dto.FavoriteMutationResponse {
	resp := &dto.FavoriteMutationResponse{Message: message}

	if err := u.favoriteRepo.Invalidate(ctx, entity.KindFavorite, ""); err != nil {
		u.log.Warnf("Failed to invalidate favorite cache: %+v", err)
		resp.Stale = true
	}

	favorites, err := u.favoriteRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to refresh favorites after mutation: %+v", err)
		resp.Stale = true
		return resp
	}
	resp.Favorites = converter.FavoritesToListResponse(favorites)
	return resp
}
