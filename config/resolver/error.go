package resolver

import (
	"fmt"

	"github.com/promptcmd/promptcmd/core"
)

// ResolveError is returned by Resolve. Use errors.As to recover the
// underlying *core.Error and inspect its Code for the failure-model tags in
// spec §4.6.
type ResolveError struct {
	Err *core.Error
}

// Error implements error by delegating to the wrapped *core.Error.
func (e *ResolveError) Error() string { return e.Err.Error() }

// Unwrap returns the wrapped *core.Error itself (not that error's own
// cause) so errors.As can reach the *core.Error and read its Code.
func (e *ResolveError) Unwrap() error { return e.Err }

func notFound(name string) error {
	return &ResolveError{core.NewError("resolver.resolve", core.ErrNotFound,
		fmt.Sprintf("'%s' not found", name), nil)}
}

func noNameToResolve() error {
	return &ResolveError{core.NewError("resolver.resolve", core.ErrNoName,
		"no model configured", nil)}
}

func groupMemberNotFound(group, member string) error {
	return &ResolveError{core.NewError("resolver.resolve_group", core.ErrGroupMemberNotFound,
		fmt.Sprintf("group %q: member %q not found", group, member), nil)}
}

func groupMemberError(group string, inner error) error {
	return &ResolveError{core.NewError("resolver.resolve_group", core.ErrGroupMemberError,
		fmt.Sprintf("group %q: member error", group), inner)}
}

// IsNotFound reports whether err is the NotFound case of ResolveError.
func IsNotFound(err error) bool {
	return core.CodeOf(err) == core.ErrNotFound
}
