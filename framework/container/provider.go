package container

import (
	"fmt"

	"go.uber.org/zap"
)

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider mirrors Laravel's Illuminate\Support\ServiceProvider.
//
// Every provider must implement at minimum Register().
// Boot() is called after ALL providers have been registered, making it safe
// to resolve other bindings inside Boot().
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    container.For[*Mailer](app).UsingFactory(newMailer).LifestyleSingleton()
//	}
type ServiceProvider interface {
	// Register binds services into the container.
	// Do NOT resolve other bindings here — use Boot() for that. The one
	// exception is a provider that installs infrastructure later providers
	// rely on during their own Register (LoggingServiceProvider sets the
	// container logger); it must be registered after what it resolves.
	Register(app *Container)

	// Boot is called after all providers are registered.
	Boot(app *Container)

	// Provides returns the abstracts a deferred provider registers.
	Provides() []string

	// IsDeferred returns true if this provider should be loaded lazily —
	// only when one of its Provides() abstracts is first resolved.
	IsDeferred() bool
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable struct that provides no-op implementations
// of Boot(), Provides(), and IsDeferred().
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Container)  {}
func (p *BaseProvider) Provides() []string { return nil }
func (p *BaseProvider) IsDeferred() bool   { return false }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry manages registration and booting of ServiceProviders,
// including deferred (lazy) providers.
type ProviderRegistry struct {
	app        *Container
	eager      []ServiceProvider
	loaded     map[ServiceProvider]bool
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to app.
func NewProviderRegistry(app *Container) *ProviderRegistry {
	return &ProviderRegistry{
		app:        app,
		loaded:     make(map[ServiceProvider]bool),
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and calls its Register() method (unless deferred).
//
//	// Laravel: $app->register(new AppServiceProvider($app))
func (r *ProviderRegistry) Register(provider ServiceProvider) {
	if r.registered[provider] {
		return
	}
	r.registered[provider] = true
	name := fmt.Sprintf("%T", provider)

	if provider.IsDeferred() {
		r.app.Logger().Debug("deferred provider registered",
			zap.String("provider", name),
			zap.Strings("provides", provider.Provides()))
		r.interceptDeferred(provider)
		return
	}

	r.load(provider)
	r.eager = append(r.eager, provider)
	r.app.Logger().Debug("provider registered", zap.String("provider", name))

	// If already booted, boot this provider immediately
	if r.booted {
		provider.Boot(r.app)
	}
}

func (r *ProviderRegistry) load(provider ServiceProvider) {
	if r.loaded[provider] {
		return
	}
	r.loaded[provider] = true
	provider.Register(r.app)
}

// interceptDeferred binds a placeholder for each deferred abstract. The first
// Make() of any of them runs the provider's real Register (which replaces the
// placeholders) and then resolves again.
func (r *ProviderRegistry) interceptDeferred(provider ServiceProvider) {
	for _, abstract := range provider.Provides() {
		abs := abstract
		r.app.Bind(abs, func(c *Container) any {
			// Once loaded, Register must have replaced this placeholder.
			if r.loaded[provider] {
				panic(fmt.Sprintf("container: deferred provider %T did not bind [%s]", provider, abs))
			}
			r.load(provider)
			if r.booted {
				provider.Boot(c)
			}
			return c.Make(abs)
		})
	}
}

// Boot calls Boot() on all eager providers.
//
//	// Laravel: $app->boot()
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, provider := range r.eager {
		provider.Boot(r.app)
	}
	r.app.Logger().Debug("providers booted", zap.Int("count", len(r.eager)))
}

// Booted returns true if Boot() has been called.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns all registered eager providers.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.eager }
