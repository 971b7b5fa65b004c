package dto

// Request DTOs

type FavoriteRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
}

// Response DTOs

type FavoriteResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	ServiceName string `json:"service_name,omitempty"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Total     int                `json:"total"`
}

type FavoriteMutationResponse struct {
	Message    string                `json:"-"`
	Stale      bool                  `json:"stale"`
	IsFavorite bool                  `json:"is_favorite"`
	Favorites  *FavoriteListResponse `json:"favorites,omitempty"`
}
