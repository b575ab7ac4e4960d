package http

import (
	"errors"
	"net/http"

	"vitacoin/internal/entity"
)

// statusFromError maps domain errors to HTTP status codes. Validation
// failures are the caller's fault, storage unavailability is retryable.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, entity.ErrActivityNotConfigured),
		errors.Is(err, entity.ErrInvalidActivityType),
		errors.Is(err, entity.ErrInvalidAmount),
		errors.Is(err, entity.ErrInvalidTransactionType),
		errors.Is(err, entity.ErrInvalidUser):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
