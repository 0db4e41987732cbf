// Package dao holds the common, reusable data-access errors. Sentinel
// variables allow callers to reliably detect error conditions via
// errors.Is/As instead of brittle string comparisons.
package dao

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist in the
	// underlying storage.
	ErrNotFound = errors.New("dao: not found")

	// ErrInvalidName indicates that the supplied name/key is empty or
	// otherwise invalid.
	ErrInvalidName = errors.New("dao: invalid name")

	// ErrNilEntity is returned when the caller attempts to persist a nil
	// pointer.
	ErrNilEntity = errors.New("dao: nil entity")
)
