// SPDX-License-Identifier: MPL-2.0

package config

import "errors"

var (
	// ErrMissingProjectPath is the sentinel wrapped when no project path
	// could be determined from flags or environment.
	ErrMissingProjectPath = errors.New("project path is required")
	// ErrMissingBuildPath is the sentinel wrapped when no build path could
	// be determined from flags or the project settings file.
	ErrMissingBuildPath = errors.New("build path is required")
)

type (
	// Options are the resolved, immutable inputs for one build or clean
	// invocation.
	Options struct {
		// ProjectPath is the root of the source asset tree.
		ProjectPath string
		// BuildPath is the root the binary artifacts are written under.
		BuildPath string
		// FlatcPath is the schema compiler executable to invoke.
		FlatcPath string
		// SchemaPaths are the ordered schema search directories.
		SchemaPaths []string
		// Jobs caps concurrent compiler invocations; 1 means sequential.
		Jobs int
	}

	// settings mirrors the optional .ambuild.toml project file. Every field
	// is optional; flags override all of them.
	settings struct {
		BuildPath   string   `mapstructure:"build_path" toml:"build_path"`
		FlatcPath   string   `mapstructure:"flatc" toml:"flatc,omitempty"`
		SchemaPaths []string `mapstructure:"schema_paths" toml:"schema_paths,omitempty"`
		Jobs        int      `mapstructure:"jobs" toml:"jobs,omitempty"`
	}
)
