// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"ambuild-cli/internal/flatc"
	"ambuild-cli/internal/pipeline"

	"github.com/spf13/cobra"
)

// cleanCmd deletes the artifacts a build would produce.
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete the binary artifacts of the project",
	Long: `Delete every binary artifact a build over the project would produce.

The artifact set is recomputed from the current source tree, so assets
deleted from the project since the last build leave their stale
artifacts behind. Missing artifacts are already clean; emptied
directories are left in place.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	pipe := pipeline.New(flatc.New(opts.FlatcPath))
	if cleanErr := pipe.Clean(cmd.Context(), pipelineOptions(opts)); cleanErr != nil {
		fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(cleanErr, verbose))
		return &ExitError{Code: 1, Err: errors.New("clean failed")}
	}

	fmt.Printf("%s Cleaned %s\n",
		SuccessStyle.Render("✓"), PathStyle.Render(opts.BuildPath))
	return nil
}
