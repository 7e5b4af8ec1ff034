package domain

import "errors"

// Domain errors represent resolution failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates an exact (wildcard-free) pattern matched no files.
	ErrNotFound = errors.New("not found")

	// ErrNoDataFiles indicates no data files could be found for a base
	// directory or repository, after trying every split inference strategy.
	ErrNoDataFiles = errors.New("no data files found")

	// ErrOriginFetch indicates origin metadata could not be computed for a
	// resolved data file. The whole batch fails, there is no partial result.
	ErrOriginFetch = errors.New("origin metadata fetch failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
