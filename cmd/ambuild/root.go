// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for ambuild.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"ambuild-cli/internal/config"
	"ambuild-cli/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool

	// Shared build inputs, resolved against the project settings file and
	// the environment by the config provider.
	projectPath string
	buildPath   string
	flatcPath   string
	schemaPaths []string
	jobs        int

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ambuild",
		Short: "An incremental binary asset builder for Amplitude projects",
		Long: TitleStyle.Render("ambuild") + SubtitleStyle.Render(" - An incremental binary asset builder for Amplitude projects") + `

ambuild compiles the JSON asset sources of an Amplitude audio project
(engine config, buses, sound banks, collections, events, and the rest)
into the binary artifacts the engine loads at runtime, invoking the
FlatBuffers schema compiler for each file.

Builds are incremental: a source is only recompiled when its artifact
is missing or older than the source or its schema.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Point AM_SDK_PATH at your Amplitude SDK installation
  2. Run 'ambuild init' inside your project to create a settings file
  3. Build with: ambuild build

` + SubtitleStyle.Render("Examples:") + `
  ambuild build -p ./project -b ./project/build   Compile stale assets
  ambuild build --jobs 4                          Compile with 4 parallel jobs
  ambuild clean                                   Delete built artifacts
  ambuild watch                                   Rebuild on every source change
  ambuild init                                    Create a default settings file`,
	}
)

func init() {
	cobra.OnInitialize(initLogging)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&projectPath, "project-path", "p", "", "project root directory (default is $AM_PROJECT_PATH)")
	rootCmd.PersistentFlags().StringVarP(&buildPath, "build-path", "b", "", "artifact output directory (default is build_path from "+config.SettingsFileName+")")
	rootCmd.PersistentFlags().StringVar(&flatcPath, "flatc", "", "schema compiler executable (default is flatc from PATH, then $AM_SDK_PATH/bin)")
	rootCmd.PersistentFlags().StringArrayVarP(&schemaPaths, "schema-path", "s", nil, "schema search directory, repeatable (default is $AM_SDK_PATH/schemas)")
	rootCmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "max parallel compiler invocations (default 1, sequential)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initLogging routes log/slog through a styled terminal logger. Internal
// packages log through slog; verbose mode surfaces their debug records
// (per-file staleness decisions, compiler invocations).
func initLogging() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	slog.SetDefault(slog.New(logger))
}

// loadOptions resolves the build options for one invocation from flags, the
// project settings file, and the environment.
func loadOptions(cmd *cobra.Command) (*config.Options, error) {
	return config.NewProvider().Load(cmd.Context(), config.LoadOptions{
		ProjectPath: projectPath,
		BuildPath:   buildPath,
		FlatcPath:   flatcPath,
		SchemaPaths: schemaPaths,
		Jobs:        jobs,
	})
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
