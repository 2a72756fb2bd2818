// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"wrapped error message", &ExitError{Code: 2, Err: errors.New("asset build failed")}, "asset build failed"},
		{"bare exit code", &ExitError{Code: 3}, "exit status 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ExitError{Code: 1, Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is() = false, want ExitError to unwrap to inner error")
	}
}
