// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"ambuild-cli/internal/config"
	"ambuild-cli/internal/flatc"
	"ambuild-cli/internal/pipeline"

	"github.com/spf13/cobra"
)

// buildCmd compiles stale project assets into binary artifacts.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile stale project assets into binary artifacts",
	Long: `Compile the project's JSON asset sources into binary artifacts.

Each asset category (config, buses, sound banks, collections, sounds,
events, and so on) is compiled against its FlatBuffers schema, in a
fixed category order. Only stale assets are rebuilt: a source is
recompiled when its artifact is missing, or older than the source or
its schema. The first compiler failure aborts the run.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("%s Building %s\n",
		VerboseHighlightStyle.Render("→"), PathStyle.Render(opts.ProjectPath))

	pipe := pipeline.New(flatc.New(opts.FlatcPath))
	if buildErr := pipe.Build(cmd.Context(), pipelineOptions(opts)); buildErr != nil {
		code := reportBuildFailure(os.Stderr, buildErr)
		return &ExitError{Code: code, Err: errors.New("asset build failed")}
	}

	fmt.Printf("%s Build complete: %s\n",
		SuccessStyle.Render("✓"), PathStyle.Render(opts.BuildPath))
	return nil
}

// pipelineOptions narrows resolved configuration to the pipeline's inputs.
func pipelineOptions(opts *config.Options) pipeline.Options {
	return pipeline.Options{
		ProjectPath: opts.ProjectPath,
		BuildPath:   opts.BuildPath,
		SchemaPaths: opts.SchemaPaths,
		Jobs:        opts.Jobs,
	}
}
