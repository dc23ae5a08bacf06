// Package errors provides error handling for vatplace.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the classification and registry error taxonomy
//
// Usage:
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check error kinds
//	if errors.IsUndefinitive(err) {
//	    // ask the caller for a billing address or declared residence
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is     = crdb.Is
	IsAny  = crdb.IsAny
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// Sentinel errors for the five error kinds surfaced by vatplace.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the kind.
var (
	// ErrInvalidInput indicates malformed or missing caller input: a bad
	// country code, a missing postal code or city, an unknown exception
	// name, or a phone number that is not in international format.
	ErrInvalidInput = New("invalid input")

	// ErrUndefinitive indicates a geolocation or phone signal matched an
	// exception zone that is too coarse to resolve on its own and no
	// corroborating evidence was supplied. The remedy is to classify a
	// billing address or declared residence and retry with its result.
	ErrUndefinitive = New("undefinitive match")

	// ErrInvalidID indicates a VAT ID that fails format validation or that
	// a registry reports as unregistered.
	ErrInvalidID = New("invalid VAT ID")

	// ErrRegistryUnavailable indicates the VIES registry reported a
	// transient server-side failure. Callers may retry.
	ErrRegistryUnavailable = New("registry unavailable")

	// ErrRegistryProtocol indicates a registry response that could not be
	// parsed or was missing expected fields. This usually means the remote
	// contract changed and is never silently defaulted.
	ErrRegistryProtocol = New("unexpected registry response")
)

// IsInvalidInput checks if an error is or wraps ErrInvalidInput
func IsInvalidInput(err error) bool {
	return err != nil && Is(err, ErrInvalidInput)
}

// IsUndefinitive checks if an error is or wraps ErrUndefinitive
func IsUndefinitive(err error) bool {
	return err != nil && Is(err, ErrUndefinitive)
}

// IsInvalidID checks if an error is or wraps ErrInvalidID
func IsInvalidID(err error) bool {
	return err != nil && Is(err, ErrInvalidID)
}

// IsRegistryUnavailable checks if an error is or wraps ErrRegistryUnavailable
func IsRegistryUnavailable(err error) bool {
	return err != nil && Is(err, ErrRegistryUnavailable)
}

// IsRegistryProtocol checks if an error is or wraps ErrRegistryProtocol
func IsRegistryProtocol(err error) bool {
	return err != nil && Is(err, ErrRegistryProtocol)
}

// NewInvalidInputf creates an invalid-input error with a formatted message
func NewInvalidInputf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidInput, Newf(format, args...).Error())
}

// NewInvalidIDf creates an invalid-ID error with a formatted message
func NewInvalidIDf(format string, args ...interface{}) error {
	return Wrap(ErrInvalidID, Newf(format, args...).Error())
}
