package providers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/config"
	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/inspect"
	"github.com/km-arc/go-laravel-listeners/framework/logging"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider loads the application configuration from .env and
// binds it into the container.
//
// Bound abstracts:
//   - "config"         → *config.Config
//   - "configuration"  → alias of "config"
type ConfigServiceProvider struct {
	container.BaseProvider
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(app *container.Container) {
	envFiles := p.EnvFiles
	container.For[*config.Config](app, "config").
		UsingFactory(func(c *container.Container) *config.Config {
			return config.Load(envFiles...)
		}).
		LifestyleSingleton().
		Alias("configuration")
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider builds the zap logger from "config" and installs it
// as the container's logger, so everything registered afterwards logs through it.
//
// Bound abstracts:
//   - "logger"  → *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
}

func (p *LoggingServiceProvider) Register(app *container.Container) {
	container.For[*zap.Logger](app, "logger").
		UsingFactory(func(c *container.Container) *zap.Logger {
			logger, err := logging.New(container.Resolve[*config.Config](c, "config"))
			if err != nil {
				panic(err)
			}
			return logger
		}).
		LifestyleSingleton()

	// Needs ConfigServiceProvider registered first.
	app.SetLogger(container.Resolve[*zap.Logger](app, "logger"))
}

// ── InspectServiceProvider ────────────────────────────────────────────────────

// InspectServiceProvider registers the container inspector. It is deferred:
// the router is only built when "inspector" is first resolved.
//
// Bound abstracts:
//   - "inspector"  → http.Handler
type InspectServiceProvider struct {
	container.BaseProvider
}

func (p *InspectServiceProvider) Register(app *container.Container) {
	container.For[http.Handler](app, "inspector").
		UsingFactory(func(c *container.Container) http.Handler {
			return inspect.Handler(c)
		}).
		LifestyleSingleton()
}

func (p *InspectServiceProvider) IsDeferred() bool   { return true }
func (p *InspectServiceProvider) Provides() []string { return []string{"inspector"} }
