package entity

import "errors"

var (
	// ErrUserNotFound is returned when no user exists for the given id.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("username or email already taken")
	// ErrInvalidUser is returned when registration input is incomplete.
	ErrInvalidUser = errors.New("username and email are required")
	// ErrActivityNotConfigured is returned when no reward configuration exists
	// for the given activity type.
	ErrActivityNotConfigured = errors.New("activity type is not configured")
	// ErrInvalidActivityType is returned when an activity type name is empty.
	ErrInvalidActivityType = errors.New("activity type is required")
	// ErrInvalidAmount is returned for negative config values or non-positive
	// explicit transaction amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidTransactionType is returned when a transaction type is neither
	// "reward" nor "penalty".
	ErrInvalidTransactionType = errors.New("transaction type must be reward or penalty")
	// ErrStorageUnavailable wraps connection-level persistence failures so
	// callers can retry with backoff, as opposed to validation errors which
	// must never be retried.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
