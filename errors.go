// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package utilities

// Status represents the result of a utilities operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrExhausted indicates an iterator was advanced past its end
	StatusErrExhausted

	// StatusErrState indicates Remove was called without a preceding Next,
	// or twice for the same element
	StatusErrState

	// StatusErrMonth indicates a month name missing from the month table
	StatusErrMonth

	// StatusErrFormat indicates a date string that does not match the layout
	StatusErrFormat
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrExhausted:
		return "no more elements"
	case StatusErrState:
		return "invalid iterator state"
	case StatusErrMonth:
		return "unknown month"
	case StatusErrFormat:
		return "malformed date"
	default:
		return "unknown error"
	}
}
