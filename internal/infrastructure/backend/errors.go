package backend

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport failures: the backend could not be reached
// or did not answer with a readable envelope.
var ErrUnavailable = errors.New("backend unavailable")

const (
	// UnavailableMessage is shown when the backend cannot be reached.
	UnavailableMessage = "Không thể kết nối đến máy chủ"
	// RejectedMessage is shown when the backend refuses without a message.
	RejectedMessage = "Yêu cầu không thành công"
)

// APIError is a request the backend answered but refused, either with a
// non-2xx status or with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Message)
}

// Message returns the text to show the user for err: the backend's own
// message when it sent one, the generic connectivity message otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return UnavailableMessage
	}
	return err.Error()
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
