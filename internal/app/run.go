package app

import (
	"context"
	"fmt"

	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/ctxlog"
)

// Run executes one resolution-and-generation cycle. All configuration errors
// surface here, before the engine reads a single document.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	opts, err := a.loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	plan, err := config.Resolve(ctx, *opts, a.registry)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if plan.Config.Skip {
		a.logger.Info("Skip is set; no sources will be generated.")
		return nil
	}

	a.logger.Debug("Plan resolved, handing off to generation engine.",
		"sources", plan.SourceCount(),
		"annotation_style", plan.Config.Style.String(),
		"source_type", plan.Config.Kind.String(),
		"target_version", plan.Config.EffectiveTargetVersion,
	)

	if err := a.engine.Generate(ctx, plan); err != nil {
		return fmt.Errorf("error generating classes from schema file(s): %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
