package netease

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoggedIn is returned for code 301 responses and for calls
	// that require a session when none is configured.
	ErrNotLoggedIn = errors.New("netease: not logged in")
	// ErrRateLimited is returned for code -460 ("cheating detected").
	ErrRateLimited = errors.New("netease: rate limited")
	// ErrForbidden is returned for code 403 (VIP required or
	// region-locked).
	ErrForbidden = errors.New("netease: forbidden")
	// ErrTrackUnavailable is returned when track_url's "url" field is
	// null: the track requires purchase/VIP or was taken down.
	ErrTrackUnavailable = errors.New("netease: track unavailable")
)

// APIError wraps a non-200 WEAPI response envelope.
type APIError struct {
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("netease: api error (code %d): %s", e.Code, e.Message)
}

// Is lets errors.Is match APIError against the specialized sentinels for
// well-known codes.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotLoggedIn:
		return e.Code == 301
	case ErrRateLimited:
		return e.Code == -460
	case ErrForbidden:
		return e.Code == 403
	}
	return false
}

func newAPIError(code int64, message string) error {
	if message == "" {
		message = "unknown error"
	}
	return &APIError{Code: code, Message: message}
}
