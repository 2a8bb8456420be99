package domain

import "errors"

var (
	// ErrMissingProductID rejects an add intent before any network call.
	ErrMissingProductID = errors.New("missing product id")

	// ErrMissingItemKey rejects a remove or set-quantity intent before
	// any network call.
	ErrMissingItemKey = errors.New("missing item key")

	// ErrNotFound marks a legitimately absent entity.
	ErrNotFound = errors.New("not found")

	// ErrBackendUnavailable wraps transport and non-success status
	// failures from the commerce backend.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
