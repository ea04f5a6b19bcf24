package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	e := NewError("resolver.resolve", ErrProviderDown, "provider unreachable", cause)

	if e.Op != "resolver.resolve" {
		t.Errorf("Op = %q, want %q", e.Op, "resolver.resolve")
	}
	if e.Code != ErrProviderDown {
		t.Errorf("Code = %q, want %q", e.Code, ErrProviderDown)
	}
	if e.Message != "provider unreachable" {
		t.Errorf("Message = %q, want %q", e.Message, "provider unreachable")
	}
	if e.Err != cause {
		t.Errorf("Err = %v, want %v", e.Err, cause)
	}
}

func TestNewError_NilCause(t *testing.T) {
	e := NewError("resolver.resolve", ErrNotFound, "name not found", nil)
	if e.Err != nil {
		t.Errorf("Err = %v, want nil", e.Err)
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with_cause",
			err:  NewError("lb.choose", ErrGroupMemberError, "member failed", fmt.Errorf("boom")),
			want: "lb.choose [group_member_error]: member failed: boom",
		},
		{
			name: "without_cause",
			err:  NewError("resolver.resolve", ErrNotFound, "'x' not found", nil),
			want: "resolver.resolve [not_found]: 'x' not found",
		},
		{
			name: "empty_fields",
			err:  NewError("", "", "", nil),
			want: " []: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want error
	}{
		{
			name: "with_cause",
			err:  NewError("op", ErrInvalidInput, "msg", fmt.Errorf("underlying")),
			want: fmt.Errorf("underlying"),
		},
		{
			name: "nil_cause",
			err:  NewError("op", ErrInvalidInput, "msg", nil),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Unwrap()
			if tt.want == nil && got != nil {
				t.Errorf("Unwrap() = %v, want nil", got)
			}
			if tt.want != nil && (got == nil || got.Error() != tt.want.Error()) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		target error
		want   bool
	}{
		{
			name:   "same_code",
			err:    NewError("op1", ErrNotFound, "msg1", nil),
			target: NewError("op2", ErrNotFound, "msg2", nil),
			want:   true,
		},
		{
			name:   "different_code",
			err:    NewError("op", ErrNotFound, "msg", nil),
			target: NewError("op", ErrNoName, "msg", nil),
			want:   false,
		},
		{
			name:   "non_promptcmd_error",
			err:    NewError("op", ErrNotFound, "msg", nil),
			target: fmt.Errorf("plain error"),
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Is(tt.target)
			if got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_ErrorsIs(t *testing.T) {
	cause := NewError("inner", ErrNoName, "no model configured", nil)
	wrapped := fmt.Errorf("outer: %w", cause)

	if !errors.Is(wrapped, NewError("", ErrNoName, "", nil)) {
		t.Error("errors.Is should match wrapped Error by code")
	}
}

func TestError_ErrorsAs(t *testing.T) {
	cause := NewError("inner", ErrRequiredConfiguration, "api_key required", nil)
	wrapped := fmt.Errorf("outer: %w", cause)

	var target *Error
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find *Error in chain")
	}
	if target.Code != ErrRequiredConfiguration {
		t.Errorf("Code = %q, want %q", target.Code, ErrRequiredConfiguration)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"promptcmd_error", NewError("op", ErrGroupMemberNotFound, "msg", nil), ErrGroupMemberNotFound},
		{"wrapped", fmt.Errorf("wrap: %w", NewError("op", ErrNotFound, "msg", nil)), ErrNotFound},
		{"plain_error", fmt.Errorf("not a promptcmd error"), ""},
		{"nil_error", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCodes_Values(t *testing.T) {
	codes := map[ErrorCode]string{
		ErrNotFound:              "not_found",
		ErrNoName:                "no_name_to_resolve",
		ErrNoGroups:              "no_groups",
		ErrGroupMemberNotFound:   "group_member_not_found",
		ErrGroupMemberError:      "group_member_error",
		ErrRequiredConfiguration: "required_configuration",
		ErrInvalidInput:          "invalid_input",
		ErrProviderDown:          "provider_unavailable",
	}

	for code, want := range codes {
		if string(code) != want {
			t.Errorf("ErrorCode %v = %q, want %q", code, string(code), want)
		}
	}
}
