package config

import (
	"context"
	"fmt"

	"github.com/vk/schemabind/internal/ctxlog"
	"github.com/vk/schemabind/internal/extension"
	"github.com/vk/schemabind/internal/filter"
	"github.com/vk/schemabind/internal/sourceloc"
	"github.com/vk/schemabind/internal/strategy"
	"github.com/vk/schemabind/internal/targetver"
)

// Resolve turns raw options into a validated, fully-resolved Plan. Steps run
// in a fixed order, each depending on its predecessors: target version,
// strategy axes, extension bindings, cross-option validation, source
// verification, filter construction. Any failure aborts with a configuration
// error before a single document is read.
func Resolve(ctx context.Context, opts Options, reg *extension.Registry) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	cfg := &RunConfig{Options: opts}
	cfg.WordDelimiters = []rune(opts.PropertyWordDelimiters)

	cfg.TargetVersionSource, cfg.EffectiveTargetVersion = targetver.Resolve(ctx, targetver.Candidates(opts.TargetVersion, opts.Env))
	if opts.TargetVersion != "" {
		if _, ok := targetver.Normalize(opts.TargetVersion); !ok {
			logger.Warn("Configured target_version does not look like a version number.", "target_version", opts.TargetVersion)
		}
	}

	var err error
	if cfg.Style, err = strategy.ParseAnnotationStyle(opts.AnnotationStyle); err != nil {
		return nil, err
	}
	if cfg.Inclusion, err = strategy.ParseInclusionLevel(opts.InclusionLevel); err != nil {
		return nil, err
	}
	if cfg.Kind, err = strategy.ParseSourceType(opts.SourceType); err != nil {
		return nil, err
	}
	if cfg.SortOrder, err = strategy.ParseSortOrder(opts.SourceSortOrder); err != nil {
		return nil, err
	}

	if cfg.Annotator, err = reg.ResolveAnnotator(opts.CustomAnnotator); err != nil {
		return nil, err
	}
	if cfg.RuleFactory, err = reg.ResolveRuleFactory(opts.CustomRuleFactory); err != nil {
		return nil, err
	}

	// A skipped run resolves its options (an invalid strategy or extension
	// name still fails fast) but selects no sources and builds no filter.
	if opts.Skip {
		logger.Debug("Skip is set; resolution stops before source selection.")
		return &Plan{Config: cfg, Filter: filter.All()}, nil
	}

	if err := validateCross(&opts); err != nil {
		return nil, err
	}

	locations, err := resolveSources(&opts)
	if err != nil {
		return nil, err
	}

	f, err := resolveFilter(&opts, locations)
	if err != nil {
		return nil, err
	}

	if opts.UseCommonsLang3 {
		logger.Warn("use_commons_lang3 is deprecated. Please remove it from your config.")
	}

	logger.Debug("Configuration resolved.",
		"sources", len(locations),
		"annotation_style", cfg.Style.String(),
		"target_version", cfg.EffectiveTargetVersion,
		"target_version_source", cfg.TargetVersionSource,
	)

	return &Plan{Config: cfg, Filter: f, locations: locations}, nil
}

// resolveSources verifies and collects the configured locations. The
// exactly-one-mode invariant was already enforced by validateCross.
func resolveSources(opts *Options) ([]sourceloc.Location, error) {
	if opts.SourceDirectory != "" {
		locs, err := sourceloc.Collect(sourceloc.Single(opts.SourceDirectory))
		if err != nil {
			return nil, fmt.Errorf("source_directory: %w", err)
		}
		return locs, nil
	}
	return sourceloc.Collect(sourceloc.Multi(opts.SourcePaths))
}

// resolveFilter builds the pattern filter when filtering is configured, or
// when single-location mode points at a plain directory (default excludes
// still apply there). Every other configuration gets the always-include
// filter.
func resolveFilter(opts *Options, locations []sourceloc.Location) (filter.Filter, error) {
	singleDir := opts.SourceDirectory != "" && len(locations) == 1 && locations[0].Dir

	if opts.filteringEnabled() {
		if !singleDir {
			return nil, fmt.Errorf("includes/excludes patterns require source_directory %q to be a readable directory", opts.SourceDirectory)
		}
		return filter.New(locations[0].Path(), opts.Includes, opts.Excludes)
	}

	if singleDir {
		return filter.New(locations[0].Path(), nil, nil)
	}
	return filter.All(), nil
}
