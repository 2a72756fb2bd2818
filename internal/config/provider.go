// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions defines explicit configuration inputs, typically sourced
	// from CLI flags. Zero values fall back to the project settings file
	// and then to environment defaults.
	LoadOptions struct {
		// ProjectPath is the --project-path flag value.
		ProjectPath string
		// BuildPath is the --build-path flag value.
		BuildPath string
		// FlatcPath is the --flatc flag value.
		FlatcPath string
		// SchemaPaths are the --schema-path flag values, in order.
		SchemaPaths []string
		// Jobs is the --jobs flag value; 0 means unset.
		Jobs int

		// LookupEnv overrides environment access; nil means os.LookupEnv.
		LookupEnv func(key string) (string, bool)
		// LookPath overrides PATH probing; nil means exec.LookPath.
		LookPath func(name string) (string, error)
	}

	// Provider loads build options from explicit load options. The
	// abstraction lets tests substitute canned configurations.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Options, error)
	}

	fileProvider struct{}
)

// NewProvider creates the production configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load resolves the build options for one invocation.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Options, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	return resolve(opts)
}
