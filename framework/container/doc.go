// Package container provides a Laravel-compatible IoC (Inversion of Control)
// container and Service Provider system for Go.
//
// # Overview
//
// The container manages the instantiation and lifecycle of your application's
// dependencies. It supports transient bindings, singletons, pre-built instances,
// aliases and typed component registrations carrying an extensible property bag.
//
// Because Go has no runtime constructor reflection, auto-wiring is replaced by
// explicit factory functions.
//
// # Bindings
//
//	// Transient — new instance every Make()
//	// Laravel: $app->bind(Foo::class, fn($app) => new Foo)
//	c.Bind("Foo", func(c *container.Container) any { return &Foo{} })
//
//	// Singleton — created once, reused
//	c.Singleton("cache", func(c *container.Container) any { return cache.New() })
//
//	// Pre-built value
//	c.Instance("config", myConfig)
//
//	// Alias
//	c.Alias("cache", "cacheManager")
//
// # Typed registrations
//
// For[T] returns a fluent *Registration[T]. The registration's static type
// is known, which is what extensions such as framework/events rely on to
// validate handler methods at configuration time.
//
//	reg := container.For[*Mailer](c).
//	    UsingFactory(func(c *container.Container) *Mailer { return &Mailer{} }).
//	    LifestyleSingleton().
//	    ExtendedProperty("queue", "mail")
//
//	mailer := reg.Make()
//
// # Resolving
//
//	raw := c.Make("cache")
//	cache := container.Resolve[*RedisCache](c, "cache")
//	cache, ok := container.TryResolve[*RedisCache](c, "cache")
//
// # Service Providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) { ... }
//	func (p *AppServiceProvider) Boot(app *container.Container)     { ... }
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers override IsDeferred and Provides; their Register runs on
// the first Make() of one of the provided abstracts.
package container
