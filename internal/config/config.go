// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"

	"ambuild-cli/internal/issue"
	"ambuild-cli/internal/platform"
)

const (
	// EnvSDKPath points at the Amplitude SDK installation. It provides the
	// default schema search path and the compiler fallback location.
	EnvSDKPath = "AM_SDK_PATH"
	// EnvSDKPlatform selects the per-platform binary directory inside the
	// SDK (e.g. "x64-linux"), used when the compiler falls back to the SDK.
	EnvSDKPlatform = "AM_SDK_PLATFORM"
	// EnvProjectPath is set by the authoring tools when a project is open;
	// it serves as the project path default when no flag is given.
	EnvProjectPath = "AM_PROJECT_PATH"

	// SettingsFileName is the optional per-project settings file, looked up
	// in the project root.
	SettingsFileName = ".ambuild.toml"

	// FlatcName is the schema compiler executable name (without platform
	// suffix).
	FlatcName = "flatc"

	// SchemasDirName is the schema directory inside the SDK installation.
	SchemasDirName = "schemas"
)

// resolve assembles Options from explicit flag values, the project settings
// file, and environment defaults, in that precedence order. The env and
// lookPath hooks come from LoadOptions so tests can run hermetically.
func resolve(opts LoadOptions) (*Options, error) {
	lookupEnv := opts.LookupEnv
	if lookupEnv == nil {
		lookupEnv = os.LookupEnv
	}
	lookPath := opts.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	projectPath := opts.ProjectPath
	if projectPath == "" {
		projectPath, _ = lookupEnv(EnvProjectPath)
	}
	if projectPath == "" {
		return nil, issue.NewErrorContext().
			WithOperation("determine project path").
			WithSuggestion("Pass --project-path with the directory containing your project").
			WithSuggestion("Or set " + EnvProjectPath + " (Amplitude Studio sets it automatically)").
			Wrap(ErrMissingProjectPath).
			BuildError()
	}

	fileCfg, err := loadSettings(projectPath)
	if err != nil {
		return nil, err
	}

	sdkPath, _ := lookupEnv(EnvSDKPath)
	if sdkPath == "" {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			return nil, fmt.Errorf("determine working directory: %w", wdErr)
		}
		sdkPath = wd
	}

	buildPath := opts.BuildPath
	if buildPath == "" {
		buildPath = fileCfg.BuildPath
		// Relative settings paths are anchored at the project root, not at
		// whatever directory the tool happens to run from.
		if buildPath != "" && !filepath.IsAbs(buildPath) {
			buildPath = filepath.Join(projectPath, buildPath)
		}
	}
	if buildPath == "" {
		return nil, issue.NewErrorContext().
			WithOperation("determine build path").
			WithSuggestion("Pass --build-path with the directory to write binaries into").
			WithSuggestion("Or set build_path in " + SettingsFileName).
			Wrap(ErrMissingBuildPath).
			BuildError()
	}

	schemaPaths := opts.SchemaPaths
	if len(schemaPaths) == 0 {
		schemaPaths = fileCfg.SchemaPaths
	}
	if len(schemaPaths) == 0 {
		schemaPaths = []string{filepath.Join(sdkPath, SchemasDirName)}
	}

	flatcPath := opts.FlatcPath
	if flatcPath == "" {
		flatcPath = fileCfg.FlatcPath
	}
	if flatcPath == "" {
		flatcPath = defaultFlatcPath(sdkPath, lookupEnv, lookPath)
	}
	flatcPath = platform.EnsureExeSuffix(flatcPath)

	jobs := opts.Jobs
	if jobs == 0 {
		jobs = fileCfg.Jobs
	}
	if jobs < 1 {
		jobs = 1
	}

	return &Options{
		ProjectPath: projectPath,
		BuildPath:   buildPath,
		FlatcPath:   flatcPath,
		SchemaPaths: schemaPaths,
		Jobs:        jobs,
	}, nil
}

// defaultFlatcPath locates the compiler when neither flag nor settings name
// one: PATH first, then the SDK's per-platform bin directory. The fallback
// is returned even when the file does not exist; a wrong path surfaces as a
// launch failure with the attempted command line, which is more useful than
// guessing here.
func defaultFlatcPath(sdkPath string, lookupEnv func(string) (string, bool), lookPath func(string) (string, error)) string {
	if found, err := lookPath(FlatcName); err == nil {
		return found
	}

	sdkPlatform, _ := lookupEnv(EnvSDKPlatform)
	return filepath.Join(sdkPath, "bin", sdkPlatform, FlatcName)
}

// loadSettings reads the optional project settings file. A missing file is
// not an error; a present but malformed one is, since the user wrote it.
func loadSettings(projectPath string) (settings, error) {
	var cfg settings

	path := filepath.Join(projectPath, SettingsFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat project settings: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return cfg, issue.NewErrorContext().
			WithOperation("load project settings").
			WithResource(path).
			WithSuggestion("Check that the file contains valid TOML").
			WithSuggestion("Run 'ambuild init --force' to regenerate a default settings file").
			Wrap(err).
			BuildError()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, issue.NewErrorContext().
			WithOperation("parse project settings").
			WithResource(path).
			WithSuggestion("Check the field types: build_path and flatc are strings, schema_paths is an array, jobs is an integer").
			Wrap(err).
			BuildError()
	}

	return cfg, nil
}

// DefaultSettings returns the settings written by 'ambuild init'.
func DefaultSettings() map[string]any {
	return map[string]any{
		"build_path": "build",
	}
}
