package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrTransientLoad indicates the simulated catalog fetch failed this attempt.
	// It is always recoverable by retrying.
	ErrTransientLoad = errors.New("exercise catalog could not be loaded")

	// ErrExerciseNotFound indicates the requested exercise does not exist
	ErrExerciseNotFound = errors.New("exercise not found")

	// ErrPostNotFound indicates the requested blog post does not exist
	ErrPostNotFound = errors.New("blog post not found")

	// ErrEmptyMessage indicates a support message with no content
	ErrEmptyMessage = errors.New("support message is empty")

	// ErrSupportRateLimited indicates a support message was sent too soon after the last one
	ErrSupportRateLimited = errors.New("support message sent too soon")
)
