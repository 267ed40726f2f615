package app

import (
	"io"
	"log/slog"

	"github.com/vk/schemabind/internal/config"
	"github.com/vk/schemabind/internal/extension"
	"github.com/vk/schemabind/internal/generate"
)

// App encapsulates one invocation's dependencies and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	loader   config.Loader
	registry *extension.Registry
	engine   generate.Engine
}

// NewApp is the constructor for the main application. The loader and engine
// are injected so hosts (and tests) can substitute their own; a nil registry
// gets the built-in extension set.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, reg *extension.Registry, engine generate.Engine) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if reg == nil {
		reg = extension.New()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		loader:   loader,
		registry: reg,
		engine:   engine,
	}
}

// Registry returns the application's extension registry. This is primarily
// for hosts that register custom annotators or rule factories before Run.
func (a *App) Registry() *extension.Registry {
	return a.registry
}
