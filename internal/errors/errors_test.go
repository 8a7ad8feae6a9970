// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-only

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestUserError_Error verifies the Error() method implementation.
func TestUserError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UserError
		want string
	}{
		{
			name: "with underlying error",
			err: &UserError{
				Message: "Division failed",
				Err:     fmt.Errorf("Division by zero!"),
			},
			want: "Division failed: Division by zero!",
		},
		{
			name: "without underlying error",
			err: &UserError{
				Message: "Invalid input",
				Err:     nil,
			},
			want: "Invalid input",
		},
		{
			name: "empty message with underlying error",
			err: &UserError{
				Message: "",
				Err:     fmt.Errorf("some error"),
			},
			want: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.want {
				t.Errorf("UserError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestUserError_Unwrap verifies error chain compatibility with errors.Is.
func TestUserError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")

	ue := NewDivisionError("Division failed", "cause", "fix", underlying)
	if !errors.Is(ue, underlying) {
		t.Errorf("errors.Is should match the wrapped error")
	}

	noWrap := NewInputError("Invalid input", "cause", "fix")
	if noWrap.Unwrap() != nil {
		t.Errorf("input errors should not wrap an underlying error")
	}
}

// TestConstructors verifies the exit code assigned by each constructor.
func TestConstructors(t *testing.T) {
	underlying := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      *UserError
		wantCode int
	}{
		{"division error", NewDivisionError("m", "c", "f", underlying), ExitDivision},
		{"input error", NewInputError("m", "c", "f"), ExitInput},
		{"internal error", NewInternalError("m", "c", "f", underlying), ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", tt.err.ExitCode, tt.wantCode)
			}
		})
	}
}

// TestFormat verifies the three-line formatted output without colors.
func TestFormat(t *testing.T) {
	ue := NewDivisionError(
		"Division failed",
		"Division by zero!",
		"Use a non-zero divisor",
		nil,
	)

	got := ue.Format(true)

	for _, want := range []string{
		"Error: Division failed\n",
		"Cause: Division by zero!\n",
		"Fix:   Use a non-zero divisor\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Format() missing %q, got: %q", want, got)
		}
	}
}

// TestFormat_OmitsEmptySections verifies empty Cause/Fix are skipped.
func TestFormat_OmitsEmptySections(t *testing.T) {
	ue := NewDivisionError("Division failed", "", "", nil)

	got := ue.Format(true)

	if strings.Contains(got, "Cause:") {
		t.Errorf("Format() should omit empty Cause, got: %q", got)
	}
	if strings.Contains(got, "Fix:") {
		t.Errorf("Format() should omit empty Fix, got: %q", got)
	}
}

// TestToJSON verifies the JSON-serializable structure.
func TestToJSON(t *testing.T) {
	ue := NewInputError("Invalid divisor", `"two" is not a number`, "Pass numeric operands")

	got := ue.ToJSON()

	if got.Error != "Invalid divisor" {
		t.Errorf("ToJSON().Error = %q", got.Error)
	}
	if got.Cause != `"two" is not a number` {
		t.Errorf("ToJSON().Cause = %q", got.Cause)
	}
	if got.ExitCode != ExitInput {
		t.Errorf("ToJSON().ExitCode = %d, want %d", got.ExitCode, ExitInput)
	}
}
