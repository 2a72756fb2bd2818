// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"ambuild-cli/internal/assets"
)

type (
	// Converter compiles one JSON data file against a binary schema into
	// outDir. Implementations run the external compiler; tests substitute
	// fakes to observe invocations.
	Converter interface {
		Convert(ctx context.Context, schemaPath, dataPath, outDir string, searchPaths []string) error
	}

	// Options are the per-invocation build inputs. They are supplied once
	// per run and never mutated by the pipeline.
	Options struct {
		// ProjectPath is the root of the source tree.
		ProjectPath string
		// BuildPath is the root of the artifact tree; outputs mirror the
		// project's relative structure under it.
		BuildPath string
		// SchemaPaths are the ordered schema search directories.
		SchemaPaths []string
		// Jobs caps concurrent compiler invocations. Values below 2 keep the
		// build strictly sequential in registry order.
		Jobs int
	}

	// Pipeline drives conversion and cleanup over a project tree.
	Pipeline struct {
		converter Converter
	}

	// conversionUnit groups one resolved schema with the ordered source
	// files it compiles. Units are recomputed from disk state on every run;
	// nothing is persisted between invocations.
	conversionUnit struct {
		category assets.Category
		schema   string
		sources  []string
	}
)

// New creates a Pipeline that compiles stale units through converter.
func New(converter Converter) *Pipeline {
	return &Pipeline{converter: converter}
}

// Build converts every stale JSON source under opts.ProjectPath into its
// binary artifact under opts.BuildPath. Categories are processed in registry
// order and sources in deterministic enumeration order; the first compiler
// failure aborts the whole run with no retry and no rollback of artifacts
// already written.
func (p *Pipeline) Build(ctx context.Context, opts Options) error {
	units, err := collectUnits(opts.ProjectPath, opts.SchemaPaths)
	if err != nil {
		return err
	}

	if opts.Jobs > 1 {
		return p.buildParallel(ctx, opts, units)
	}

	for _, unit := range units {
		for _, source := range unit.sources {
			target, err := prepareTarget(source, opts)
			if err != nil {
				return err
			}

			if !NeedsRebuild(source, target) && !NeedsRebuild(unit.schema, target) {
				slog.Debug("asset up to date", "source", source, "target", target)
				continue
			}

			slog.Debug("converting asset",
				"category", unit.category.Name, "source", source, "target", target)
			if err := p.converter.Convert(ctx, unit.schema, source, filepath.Dir(target), opts.SchemaPaths); err != nil {
				return err
			}
		}
	}

	return nil
}

// buildParallel runs stale conversions through an errgroup capped at
// opts.Jobs. Each unit's inputs and outputs are independent, so the only
// ordering guarantee that survives is fail-fast: any failure cancels the
// group context and aborts the run, reporting one (unspecified) failing
// unit. Directory creation stays in the submitting goroutine and MkdirAll
// is idempotent, so concurrent target directories are safe.
func (p *Pipeline) buildParallel(ctx context.Context, opts Options, units []conversionUnit) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)

	for _, unit := range units {
		for _, source := range unit.sources {
			target, err := prepareTarget(source, opts)
			if err != nil {
				return errors.Join(err, g.Wait())
			}

			if !NeedsRebuild(source, target) && !NeedsRebuild(unit.schema, target) {
				continue
			}

			schema := unit.schema
			g.Go(func() error {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				return p.converter.Convert(gctx, schema, source, filepath.Dir(target), opts.SchemaPaths)
			})
		}
	}

	return g.Wait()
}

// Clean deletes every artifact a Build over the same tree would produce. It
// recomputes the category mapping without any staleness check, treats
// missing targets as already clean, and leaves now-empty directories in
// place.
func (p *Pipeline) Clean(ctx context.Context, opts Options) error {
	units, err := collectUnits(opts.ProjectPath, opts.SchemaPaths)
	if err != nil {
		return err
	}

	for _, unit := range units {
		for _, source := range unit.sources {
			if err := ctx.Err(); err != nil {
				return err
			}

			target, err := assets.MapOutputPath(source, opts.ProjectPath, opts.BuildPath)
			if err != nil {
				return err
			}

			if err := os.Remove(target); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				return fmt.Errorf("remove artifact %s: %w", target, err)
			}
			slog.Debug("removed artifact", "target", target)
		}
	}

	return nil
}

// prepareTarget maps source to its artifact path and makes sure the target
// directory exists before anything is written into it.
func prepareTarget(source string, opts Options) (string, error) {
	target, err := assets.MapOutputPath(source, opts.ProjectPath, opts.BuildPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create output directory for %s: %w", target, err)
	}

	return target, nil
}

// collectUnits enumerates the source files of every registered category and
// resolves each category's schema. Glob results are sorted so enumeration
// order (and with it build order and failure reporting) is deterministic
// across runs and platforms.
func collectUnits(projectPath string, schemaPaths []string) ([]conversionUnit, error) {
	units := make([]conversionUnit, 0, len(assets.Categories()))

	for _, category := range assets.Categories() {
		sources, err := enumerateSources(projectPath, category)
		if err != nil {
			return nil, err
		}

		units = append(units, conversionUnit{
			category: category,
			schema:   assets.ResolveSchema(category.Schema, schemaPaths),
			sources:  sources,
		})
	}

	return units, nil
}

// enumerateSources globs a category's pattern under the project root. A
// missing category directory is not an error; the category simply has no
// sources this run.
func enumerateSources(projectPath string, category assets.Category) ([]string, error) {
	pattern := filepath.Join(projectPath, category.Dir, category.Pattern)

	matches, err := doublestarGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("enumerate %s sources: %w", category.Name, err)
	}

	sort.Strings(matches)
	return matches, nil
}
