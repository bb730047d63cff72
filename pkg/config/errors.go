package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnv is returned when a .env file cannot be read
	ErrLoadingEnv = errors.New("failed to load environment files")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrInvalidPolicy is returned when policy bounds contradict each other
	ErrInvalidPolicy = errors.New("invalid validation policy")
)
