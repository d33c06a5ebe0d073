// Copyright (c) 2025 The go-ecc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ecc

import "fmt"

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error, even when the error has been
// wrapped.
type ErrorKind string

// These constants are used to identify a specific ErrorKind.
const (
	// ErrUnknownCurve indicates a curve name was not found in the registry.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrInvalidPoint indicates a point failed the curve equation when
	// validation was explicitly requested.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrNoModularInverse indicates the inputs to mmi are not coprime.
	ErrNoModularInverse = ErrorKind("ErrNoModularInverse")

	// ErrEncoding indicates the Koblitz encoder could not embed a message
	// with any witness j in [0, alphabet_size], or that the curve's
	// cofactor is not 1.
	ErrEncoding = ErrorKind("ErrEncoding")

	// ErrDecoding indicates Koblitz decoding was given a (point, j) pair
	// that does not correspond to a valid plaintext.
	ErrDecoding = ErrorKind("ErrDecoding")

	// ErrRange indicates a caller-supplied scalar is out of the allowed
	// range for the operation being performed.
	ErrRange = ErrorKind("ErrRange")
)

// Error satisfies the error interface and represents a single error.  It
// carries a kind so that callers can determine the reason for the failure
// with errors.Is, plus a human-readable description for logging.
type Error struct {
	Err         ErrorKind
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is implements the interface to work with errors.Is.  It compares this
// error's kind against the one passed in, making it possible to directly
// check for a specific error kind.
func (e Error) Is(target error) bool {
	var kind ErrorKind
	switch err := target.(type) {
	case ErrorKind:
		kind = err
	case Error:
		kind = err.Err
	default:
		return false
	}
	return e.Err == kind
}

// As implements the interface to work with errors.As.
func (e Error) As(target interface{}) bool {
	switch err := target.(type) {
	case *ErrorKind:
		*err = e.Err
		return true
	}
	return false
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// String returns the ErrorKind as a human-readable string.
func (e ErrorKind) String() string {
	return fmt.Sprintf("%s", string(e))
}
