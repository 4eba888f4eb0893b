package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrEmptyCatalog is returned when matching is attempted against an empty catalog snapshot
	ErrEmptyCatalog = errors.New("catalog snapshot is empty")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrSquarespaceAPIFailure is returned when a Squarespace API request fails
	ErrSquarespaceAPIFailure = errors.New("squarespace API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrRunNotFound is returned when a stored mapping run cannot be found
	ErrRunNotFound = errors.New("mapping run not found")
)
