package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The store returns these
// (optionally wrapped) so the service layer can translate them into domain
// errors without knowing store internals.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in the store
// - ErrConflict: a uniqueness invariant would be violated
// - ErrInvalidState: entity is in the wrong state for the requested operation
//
// For validation errors (bad input, missing fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInvalidState = errors.New("invalid state")
)
