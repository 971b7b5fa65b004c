package handler

import (
	"errors"
	"net/http"

	"salon-booking/internal/infrastructure/backend"
	"salon-booking/internal/service"
	"salon-booking/internal/usecase"
	"salon-booking/pkg/response"
)

const inFlightMessage = "Yêu cầu đang được xử lý, vui lòng đợi"

// writeError answers for failures every handler shares: refusals relayed
// from the salon backend, an unreachable backend, a duplicate click and a
// missing login. Anything else is reported as fallback.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < http.StatusBadRequest {
			// Refused with success=false on a 2xx.
			status = http.StatusUnprocessableEntity
		}
		response.Error(w, status, apiErr.Message, nil)
	case errors.Is(err, backend.ErrUnavailable):
		response.ServiceUnavailable(w, backend.UnavailableMessage)
	case errors.Is(err, service.ErrRequestInFlight):
		response.Conflict(w, inFlightMessage)
	case errors.Is(err, usecase.ErrUnauthenticated):
		response.Unauthorized(w, "")
	default:
		response.InternalServerError(w, fallback)
	}
}
