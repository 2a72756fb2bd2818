// SPDX-License-Identifier: MPL-2.0

package flatc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// LaunchFailureExitCode is the sentinel exit code recorded on a BuildError
// when the compiler process could not be started at all (binary missing or
// not executable), as opposed to starting and exiting non-zero.
const LaunchFailureExitCode = -1

var (
	// ErrCompilerLaunch is the sentinel wrapped by BuildError when the
	// compiler executable could not be started.
	ErrCompilerLaunch = errors.New("compiler could not be started")
	// ErrCompilerExit is the sentinel wrapped by BuildError when the
	// compiler started but exited with a non-zero status.
	ErrCompilerExit = errors.New("compiler exited with a failure status")
)

type (
	// BuildError reports a failed compiler invocation. It carries the full
	// attempted command line, the process exit code (or
	// LaunchFailureExitCode), and the compiler's stderr output or the
	// operating system's launch error message.
	BuildError struct {
		Argv     []string
		ExitCode int
		Message  string
	}

	// Compiler runs a flatc executable located at Path.
	Compiler struct {
		// Path is the flatc executable: an absolute path, or a bare name
		// resolved through PATH by the operating system.
		Path string
	}
)

// Error returns the failing command line, exit status and any diagnostic
// output. The command line is included verbatim so users can re-run it.
func (e *BuildError) Error() string {
	msg := fmt.Sprintf("command `%s` failed with status %d", strings.Join(e.Argv, " "), e.ExitCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns the sentinel matching the failure mode so callers can
// distinguish launch failures from compiler failures with errors.Is.
func (e *BuildError) Unwrap() error {
	if e.ExitCode == LaunchFailureExitCode {
		return ErrCompilerLaunch
	}
	return ErrCompilerExit
}

// New creates a Compiler for the given executable path.
func New(path string) *Compiler {
	return &Compiler{Path: path}
}

// Convert compiles one JSON data file against a binary schema, writing the
// artifact into outDir. The invocation is synchronous: Convert blocks until
// the compiler process exits and inspects its status. Each search path is
// passed as a separate -I flag for include resolution inside the schema.
func (c *Compiler) Convert(ctx context.Context, schemaPath, dataPath, outDir string, searchPaths []string) error {
	args := []string{"-o", outDir}
	for _, dir := range searchPaths {
		args = append(args, "-I", dir)
	}
	args = append(args, "-b", schemaPath, dataPath)

	cmd := exec.CommandContext(ctx, c.Path, args...)

	// flatc writes its diagnostics to stderr; capture them for the error
	// value instead of letting them interleave with our own output.
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		argv := append([]string{c.Path}, args...)

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &BuildError{
				Argv:     argv,
				ExitCode: exitErr.ExitCode(),
				Message:  strings.TrimSpace(stderr.String()),
			}
		}

		return &BuildError{
			Argv:     argv,
			ExitCode: LaunchFailureExitCode,
			Message:  err.Error(),
		}
	}

	return nil
}
