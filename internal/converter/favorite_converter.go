package converter

import (
	"salon-booking/internal/delivery/dto"
	"salon-booking/internal/domain/entity"
)

func FavoriteToResponse(favorite *entity.Favorite) *dto.FavoriteResponse {
	if favorite == nil {
		return nil
	}
	return &dto.FavoriteResponse{
		ID:          favorite.ID,
		ServiceID:   favorite.ServiceID.ID,
		ServiceName: favorite.ServiceID.Name,
	}
}

func FavoritesToListResponse(favorites []entity.Favorite) *dto.FavoriteListResponse {
	list := &dto.FavoriteListResponse{
		Favorites: make([]dto.FavoriteResponse, len(favorites)),
		Total:     len(favorites),
	}
	for i := range favorites {
		list.Favorites[i] = *FavoriteToResponse(&favorites[i])
	}
	return list
}
