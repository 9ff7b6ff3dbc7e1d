package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/config"
	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/events"
	"github.com/km-arc/go-laravel-listeners/framework/providers"
)

// Application is the top-level application container.
// It embeds the IoC Container and ProviderRegistry so user code can
// call app.Bind(), app.Singleton(), app.Register() directly —
// exactly like $app in Laravel's bootstrap/app.php.
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework core providers.
// listen declarations run during registration, so a malformed listener
// halts bootstrap here.
func New(envFiles []string, listen ...func(*container.Container)) *Application {
	c := container.New()
	registry := container.NewProviderRegistry(c)

	app := &Application{
		Container: c,
		Providers: registry,
	}

	registry.Register(&providers.ConfigServiceProvider{EnvFiles: envFiles})
	registry.Register(&providers.LoggingServiceProvider{})
	registry.Register(&events.EventServiceProvider{Listen: listen})
	registry.Register(&providers.InspectServiceProvider{})

	return app
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) {
	a.Providers.Register(provider)
}

// Boot runs the Boot() phase on all providers.
func (a *Application) Boot() {
	a.Providers.Boot()
}

// Config resolves *config.Config from the container.
func (a *Application) Config() *config.Config {
	return container.Resolve[*config.Config](a.Container, "config")
}

// Inspector resolves the container inspector handler.
func (a *Application) Inspector() http.Handler {
	return container.Resolve[http.Handler](a.Container, "inspector")
}

// Listeners returns every listener wiring registered so far.
func (a *Application) Listeners() []events.ComponentWiring {
	return events.Collect(a.Container)
}

// Handler returns the root router with the inspector mounted under
// INSPECT_PREFIX.
func (a *Application) Handler() http.Handler {
	r := chi.NewRouter()
	r.Mount(a.Config().Inspect.Prefix, a.Inspector())
	return r
}

// Serve boots the application (if needed) and, when INSPECT_ENABLED is set,
// serves the inspector under INSPECT_PREFIX until ctx is done.
func (a *Application) Serve(ctx context.Context) error {
	if !a.Providers.Booted() {
		a.Boot()
	}
	cfg := a.Config()
	logger := a.Logger()
	if !cfg.Inspect.Enabled {
		logger.Info("inspector disabled")
		return nil
	}

	srv := &http.Server{Addr: cfg.Inspect.Addr, Handler: a.Handler(), ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("inspector listening",
		zap.String("addr", cfg.Inspect.Addr),
		zap.String("prefix", cfg.Inspect.Prefix))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
func (a *Application) Version() string     { return "0.1.0" }
