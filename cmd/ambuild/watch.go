// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ambuild-cli/internal/flatc"
	"ambuild-cli/internal/pipeline"
	"ambuild-cli/internal/watch"

	"github.com/spf13/cobra"
)

var (
	watchDebounce time.Duration

	// watchCmd rebuilds the project whenever an asset source changes.
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Rebuild automatically when project assets change",
		Long: `Watch the project tree and rebuild whenever a JSON asset changes.

An initial build runs immediately. After that, changes are debounced so
a burst of saves triggers a single incremental rebuild. Build failures
are reported and watching continues; fix the asset and save again.`,
		Args: cobra.NoArgs,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 0, "quiet period before rebuilding (default 500ms)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	pipe := pipeline.New(flatc.New(opts.FlatcPath))
	rebuild := func(ctx context.Context) error {
		return pipe.Build(ctx, pipelineOptions(opts))
	}

	// Execute one build immediately before starting the watcher.
	fmt.Printf("%s Watch mode: initial build of %s\n",
		VerboseHighlightStyle.Render("→"), PathStyle.Render(opts.ProjectPath))
	if buildErr := rebuild(cmd.Context()); buildErr != nil {
		// Report but don't stop - the user may fix the asset and save again.
		reportBuildFailure(os.Stderr, buildErr)
	}

	fmt.Printf("\n%s Watching for changes (Ctrl+C to stop)...\n\n",
		VerboseHighlightStyle.Render("→"))

	cfg := watch.Config{
		Root:     opts.ProjectPath,
		Patterns: []string{"**/*.json"},
		Ignore:   buildTreeIgnores(opts.ProjectPath, opts.BuildPath),
		Debounce: watchDebounce,
		OnChange: func(ctx context.Context, changed []string) error {
			fmt.Printf("%s Detected %d change(s). Rebuilding...\n",
				VerboseHighlightStyle.Render("→"), len(changed))
			if buildErr := rebuild(ctx); buildErr != nil {
				reportBuildFailure(os.Stderr, buildErr)
			} else {
				fmt.Printf("%s Build complete\n", SuccessStyle.Render("✓"))
			}
			fmt.Printf("\n%s Watching for changes...\n\n", VerboseHighlightStyle.Render("→"))
			return nil
		},
		Stderr: os.Stderr,
	}

	w, err := watch.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	return w.Run(cmd.Context())
}

// buildTreeIgnores excludes the artifact tree from watching when it lives
// inside the project. Without this, every rebuild's output would retrigger
// the watcher.
func buildTreeIgnores(projectPath, buildPath string) []string {
	rel, err := filepath.Rel(projectPath, buildPath)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return nil
	}
	rel = filepath.ToSlash(rel)
	return []string{rel, rel + "/**"}
}
