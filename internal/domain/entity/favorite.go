package entity

// Favorite marks a service the customer saved.
type Favorite struct {
	ID        string `json:"_id"`
	ServiceID Ref    `json:"serviceId"`
}

// FindFavorite returns the favorite holding serviceID, if any.
func FindFavorite(favorites []Favorite, serviceID string) (Favorite, bool) {
	for _, fav := range favorites {
		if fav.ServiceID.ID == serviceID {
			return fav, true
		}
	}
	return Favorite{}, false
}
