// Package core provides the foundational primitive shared across promptcmd:
// a structured, discriminable error type used by the config resolver, load
// balancer, and LLM builder bridge.
package core

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the category of an error. Callers use these codes to
// decide exit status and user-facing messages (see the resolver's failure
// model).
type ErrorCode string

const (
	// ErrNotFound indicates a requested name is neither a known Base, Variant,
	// nor Group.
	ErrNotFound ErrorCode = "not_found"

	// ErrNoName indicates no source supplied a name to resolve, or a
	// candidate Base/Variant resolved without a usable model.
	ErrNoName ErrorCode = "no_name_to_resolve"

	// ErrNoGroups is reserved for configurations that forbid groups.
	ErrNoGroups ErrorCode = "no_groups"

	// ErrGroupMemberNotFound indicates a group member name is neither a Base
	// nor a Variant.
	ErrGroupMemberNotFound ErrorCode = "group_member_not_found"

	// ErrGroupMemberError wraps any other non-NotFound failure inside a
	// group member resolution.
	ErrGroupMemberError ErrorCode = "group_member_error"

	// ErrRequiredConfiguration indicates the builder bridge is missing a
	// field required by the target provider kind.
	ErrRequiredConfiguration ErrorCode = "required_configuration"

	// ErrInvalidInput indicates the caller supplied malformed or missing
	// input (e.g. an unparsable config file or dotprompt).
	ErrInvalidInput ErrorCode = "invalid_input"

	// ErrProviderDown indicates the upstream provider transport is
	// unavailable in this build (e.g. no SDK wired for the provider kind).
	ErrProviderDown ErrorCode = "provider_unavailable"
)

// Error is a structured error carrying an operation name, error code,
// human-readable message, and an optional wrapped cause.
type Error struct {
	// Op is the operation that failed, e.g. "resolver.resolve" or
	// "loadbalancer.choose".
	Op string

	// Code categorizes the error for programmatic handling.
	Code ErrorCode

	// Message is a human-readable description of what went wrong.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// NewError creates a new Error with the given operation, code, message, and
// optional cause.
func NewError(op string, code ErrorCode, msg string, cause error) *Error {
	return &Error{
		Op:      op,
		Code:    code,
		Message: msg,
		Err:     cause,
	}
}

// Error returns a string representation of the error including op, code,
// message, and the wrapped cause if present.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %s: %v", e.Op, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %s", e.Op, e.Code, e.Message)
}

// Unwrap returns the underlying cause so errors.Is and errors.As traverse
// the error chain.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error. Two Errors match if they
// share the same Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// CodeOf returns the ErrorCode carried by err, or "" if err does not wrap a
// *Error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
