// Package usecase implements the business logic for the resolution feature.
package usecase

import "errors"

var (
	// ErrMappingNotFound is returned by registry repositories when no live
	// entry exists for a raw symbol.
	ErrMappingNotFound = errors.New("mapping not found")

	// ErrRegistrySave wraps registry write failures. The resolution itself
	// may still be valid; callers decide what to do about the lost write.
	ErrRegistrySave = errors.New("failed to save registry entry")

	// ErrInvalidConfirmation is returned when a confirmation is missing the
	// raw symbol or the ticker.
	ErrInvalidConfirmation = errors.New("raw symbol and ticker are required")
)
