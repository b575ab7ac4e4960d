package persistent

import (
	"errors"
	"fmt"
	"net"

	"vitacoin/internal/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

const conflictRetries = 3

// isSerializationFailure reports whether err is a transient Postgres
// conflict (serialization failure or deadlock) that the repository retries
// internally instead of surfacing to callers.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// wrapStorageErr tags connection-level failures with ErrStorageUnavailable
// so callers can tell retryable infrastructure errors from validation errors.
func wrapStorageErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08: connection exceptions
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
		}
		return err
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", entity.ErrStorageUnavailable, err)
	}

	return err
}
