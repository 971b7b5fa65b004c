package handler

import (
	"time"

	"salon-booking/internal/usecase"
)

func parseDate(value string) (time.Time, error) {
	return time.Parse(usecase.DateLayout, value)
}
