package fuzzydate

import "errors"

// Package-specific errors
var (
	// ErrInvalidFormat is returned when a textual date does not match the
	// fixed-width canonical forms.
	ErrInvalidFormat = errors.New("invalid date format")

	// ErrNotCanonical is returned when a date cannot be rendered in the
	// canonical text form, such as a populated month without a year.
	ErrNotCanonical = errors.New("date has no canonical text form")
)
