// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name:     "operation only",
			err:      &ActionableError{Operation: "load project settings"},
			expected: "failed to load project settings",
		},
		{
			name:     "with resource",
			err:      &ActionableError{Operation: "load project settings", Resource: ".ambuild.toml"},
			expected: "failed to load project settings: .ambuild.toml",
		},
		{
			name: "with cause",
			err: &ActionableError{
				Operation: "load project settings",
				Resource:  ".ambuild.toml",
				Cause:     errors.New("permission denied"),
			},
			expected: "failed to load project settings: .ambuild.toml: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorContext_Builder(t *testing.T) {
	cause := errors.New("boom")
	err := NewErrorContext().
		WithOperation("resolve compiler").
		WithResource("flatc").
		WithSuggestion("Set AM_SDK_PATH to your SDK installation").
		WithSuggestion("Pass --flatc with an explicit path").
		Wrap(cause).
		BuildError()

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatalf("BuildError() type = %T, want *ActionableError", err)
	}
	if ae.Operation != "resolve compiler" {
		t.Errorf("Operation = %q", ae.Operation)
	}
	if len(ae.Suggestions) != 2 {
		t.Errorf("Suggestions = %v, want 2 entries", ae.Suggestions)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want unwrap to cause")
	}
}

func TestActionableError_Format(t *testing.T) {
	err := &ActionableError{
		Operation:   "load project settings",
		Suggestions: []string{"Run 'ambuild init' to create one"},
	}

	if got := err.Format(false); strings.Contains(got, "Suggestions") {
		t.Errorf("Format(false) = %q, must not include suggestions", got)
	}
	if got := err.Format(true); !strings.Contains(got, "Run 'ambuild init'") {
		t.Errorf("Format(true) = %q, want suggestions listed", got)
	}
}

func TestWrapWithOperation_NilError(t *testing.T) {
	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}
}
