package domain

import "errors"

var (
	// ErrNotFound signals legitimate absence of a job, page or template.
	ErrNotFound = errors.New("not found")
	// ErrStoreUnavailable signals a connectivity or query failure against
	// the backing store, as opposed to absence.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrGenerationFailed signals an error, malformed payload or empty
	// result from the external text/image generation API.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrInvalidInput signals a request that fails domain validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRunnerBusy signals that the generation run queue is full.
	ErrRunnerBusy = errors.New("generation runner busy")
)
