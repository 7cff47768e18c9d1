// Package errors provides error handling for Hasami.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Sentinel errors for the retention core's precondition contract
//
// Usage:
//
//	// Reject a bad configuration
//	if base <= 1 {
//	    return errors.Wrapf(errors.ErrInvalidBase, "base %d", base)
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrInvalidBase) {
//	    // handle configuration error
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

// Sentinel errors for the retention core's precondition contract.
// Every violation is a configuration or programmer error, signaled
// immediately and never clamped. Wrap these with errors.Wrapf() to
// attach the offending value while preserving the kind.
var (
	// ErrInvalidBase indicates a positional base of 1 or less
	ErrInvalidBase = New("invalid base: must be greater than 1")

	// ErrInvalidRetainCount indicates a retain count of 0 or less
	ErrInvalidRetainCount = New("invalid retain count: must be greater than 0")

	// ErrInvalidDigitPosition indicates a negative digit position
	ErrInvalidDigitPosition = New("invalid digit position: must not be negative")

	// ErrNegativeTimeCode indicates a negative time code reached a digit
	// operation. Digit extraction is undefined for negative values under
	// truncating division, so they are rejected outright.
	ErrNegativeTimeCode = New("negative time code: digit operations require non-negative values")

	// ErrDuplicateTimeCode indicates two distinct items carried the same
	// time code, violating the uniquely-timestamped input contract.
	ErrDuplicateTimeCode = New("duplicate time code: items must be uniquely timestamped")
)

// IsPreconditionError reports whether err is any of the retention core's
// contract violations.
func IsPreconditionError(err error) bool {
	return err != nil && IsAny(err,
		ErrInvalidBase,
		ErrInvalidRetainCount,
		ErrInvalidDigitPosition,
		ErrNegativeTimeCode,
		ErrDuplicateTimeCode,
	)
}
