package session

import "errors"

var (
	// ErrSessionNotFound is returned by a Store when no record has the lookup key.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrStoreFailure wraps any storage error surfaced by the Manager.
	ErrStoreFailure = errors.New("session.store_failure")

	// ErrInvalidSession is returned when a record cannot be stored as given.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("session.invalid_config")

	// ErrCleanupUnsupported is returned by Manager.DeleteExpired when the
	// store cannot delete expired records in bulk.
	ErrCleanupUnsupported = errors.New("session.cleanup_unsupported")
)
