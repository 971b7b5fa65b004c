package entity

// Service is a salon service offered for booking.
type Service struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	Price         int64   `json:"price"`
	Duration      int     `json:"duration"`
	Image         string  `json:"image,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
	Category      Ref     `json:"category"`
}
