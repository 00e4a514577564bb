// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The splaytree developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package splay

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrNilKey indicates a nil key was passed to a keyed operation on a
	// tree whose key type admits nil values.
	ErrNilKey ErrorCode = iota

	// ErrNilCompare indicates a tree was requested without a comparison
	// function.
	ErrNilCompare

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrNilKey:     "ErrNilKey",
	ErrNilCompare: "ErrNilCompare",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a misuse of the tree API.  The caller can use type
// assertions or errors.Is with another Error to determine the specific
// reason for the failure by examining the ErrorCode field.
//
// Misuse is reported by panicking with an Error since it is a programming
// mistake that would otherwise corrupt the ordering of the tree.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Is reports whether target is an Error with the same error code.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.ErrorCode == e.ErrorCode
}

// splayError creates an Error given a set of arguments.
func splayError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}
