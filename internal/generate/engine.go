package generate

import (
	"context"

	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/ctxlog"
)

// Engine consumes a fully-resolved plan and produces generated sources. The
// plan and its configuration are immutable; an engine may process documents
// concurrently but must treat them as read-only.
type Engine interface {
	Generate(ctx context.Context, plan *config.Plan) error
}

// DryRun is an Engine that performs no generation. It drains the source
// sequence once, expands directory locations with the configured sort order
// and file filter, and logs every document a real engine would read.
type DryRun struct{}

// Generate implements Engine.
func (DryRun) Generate(ctx context.Context, plan *config.Plan) error {
	logger := ctxlog.FromContext(ctx)

	for loc := range plan.Sources() {
		if !loc.Dir {
			logger.Info("Would generate from document.", "source", loc.String(), "source_type", plan.Config.Kind.String())
			continue
		}

		files, err := walkDir(loc.Path(), plan.Config.SortOrder, plan.Filter)
		if err != nil {
			return err
		}
		for _, f := range files {
			logger.Info("Would generate from document.", "source", f, "source_type", plan.Config.Kind.String())
		}
	}

	logger.Info("Dry run complete; no sources were written.", "output_directory", plan.Config.OutputDirectory)
	return nil
}
