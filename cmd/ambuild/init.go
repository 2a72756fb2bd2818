// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"ambuild-cli/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	initForce bool

	// initCmd creates a new project settings file
	initCmd = &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a default settings file in the project directory",
		Long: `Create a default ` + config.SettingsFileName + ` in the project directory.

The settings file holds per-project defaults (build path, compiler
location, schema search paths, job count) so builds run without flags.
With no argument the file is created in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInitSettings,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}

func runInitSettings(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.SettingsFileName)

	// Check if file exists
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", path)
	}

	content, err := toml.Marshal(config.DefaultSettings())
	if err != nil {
		return fmt.Errorf("encode default settings: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(path)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Adjust build_path (and optionally flatc, schema_paths, jobs)")
	fmt.Println("  2. Point AM_SDK_PATH at your Amplitude SDK installation")
	fmt.Println("  3. Run 'ambuild build' to compile the project")

	return nil
}
