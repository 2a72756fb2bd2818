// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ambuild-cli/internal/flatc"
)

// reportBuildFailure prints a styled failure card for compiler errors and a
// plain styled line for everything else. It returns the exit code the
// failure should map to.
func reportBuildFailure(w io.Writer, err error) int {
	var buildErr *flatc.BuildError
	if errors.As(err, &buildErr) {
		renderCompilerFailure(w, buildErr)
		if buildErr.ExitCode > 0 {
			return buildErr.ExitCode
		}
		return 1
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	return 1
}

// renderCompilerFailure renders one schema compiler failure as a card: the
// exact command line, how it ended, and whatever the compiler wrote to
// stderr.
func renderCompilerFailure(w io.Writer, buildErr *flatc.BuildError) {
	fmt.Fprintln(w, renderHeaderStyle.Render("Asset compilation failed"))

	fmt.Fprintf(w, "  %s %s\n",
		renderLabelStyle.Render("Command:"),
		renderCommandStyle.Render(strings.Join(buildErr.Argv, " ")))

	status := fmt.Sprintf("exited with status %d", buildErr.ExitCode)
	if buildErr.ExitCode == flatc.LaunchFailureExitCode {
		status = "could not be launched"
	}
	fmt.Fprintf(w, "  %s %s\n",
		renderLabelStyle.Render("Status: "),
		renderValueStyle.Render(status))

	if buildErr.Message != "" {
		fmt.Fprintf(w, "  %s\n", renderLabelStyle.Render("Output:"))
		for _, line := range strings.Split(strings.TrimRight(buildErr.Message, "\n"), "\n") {
			fmt.Fprintf(w, "    %s\n", renderValueStyle.Render(line))
		}
	}

	hint := "Check the source file against its schema; rerun with -v to see every compiler invocation."
	if buildErr.ExitCode == flatc.LaunchFailureExitCode {
		hint = "Check that flatc is installed and on PATH, or point --flatc (or AM_SDK_PATH) at it."
	}
	fmt.Fprintln(w, renderHintStyle.Render(hint))
}
