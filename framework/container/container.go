package container

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// ── Components ────────────────────────────────────────────────────────────────

// Factory is a function that builds a concrete value from the container.
type Factory func(c *Container) any

// Lifestyle controls how often a component's factory runs.
type Lifestyle int

const (
	// Transient builds a new instance on every Make.
	Transient Lifestyle = iota
	// Singleton builds once and caches the result.
	Singleton
)

func (l Lifestyle) String() string {
	switch l {
	case Singleton:
		return "singleton"
	default:
		return "transient"
	}
}

// Component is the untyped registration record the container holds for one
// abstract: its factory, lifestyle, static type (when known) and the
// extensible property bag that extensions such as framework/events write to.
type Component struct {
	abstract string
	props    *Properties

	mu        sync.RWMutex
	typ       reflect.Type
	factory   Factory
	lifestyle Lifestyle
}

func newComponent(abstract string, typ reflect.Type) *Component {
	return &Component{abstract: abstract, typ: typ, props: newProperties()}
}

// Abstract returns the canonical key the component is registered under.
func (cm *Component) Abstract() string { return cm.abstract }

// Type returns the component's static type, or nil for components registered
// through the untyped Bind / Singleton / Instance API.
func (cm *Component) Type() reflect.Type {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.typ
}

// Lifestyle returns the component's lifestyle.
func (cm *Component) Lifestyle() Lifestyle {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.lifestyle
}

// Properties returns the component's extended property bag.
func (cm *Component) Properties() *Properties { return cm.props }

func (cm *Component) set(factory Factory, lifestyle Lifestyle) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.factory = factory
	cm.lifestyle = lifestyle
}

func (cm *Component) snapshot() (Factory, Lifestyle) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.factory, cm.lifestyle
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container is the IoC container — mirrors Laravel's Illuminate\Container\Container.
//
// It supports:
//   - Bind / Singleton / Instance / Alias
//   - Typed component registrations with extended properties (For)
//   - Make / Resolve (generic)
//   - Resolved event callbacks
type Container struct {
	mu sync.RWMutex

	// abstract → component record
	components map[string]*Component

	// registration order of abstracts
	order []string

	// abstract → resolved singleton instance
	instances map[string]any

	// alias → abstract (canonical key)
	aliases map[string]string

	// resolved callbacks: []func(abstract, instance)
	afterResolving []func(string, any)

	logger *zap.Logger
}

// Option configures a Container at construction time.
type Option func(*Container)

// WithLogger sets the logger used for registration diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		components: make(map[string]*Component),
		instances:  make(map[string]any),
		aliases:    make(map[string]string),
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	// Bind the container to itself — like Laravel's $app->instance()
	c.Instance("container", c)
	return c
}

// Logger returns the container's logger. Never nil.
func (c *Container) Logger() *zap.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logger
}

// SetLogger swaps the container's logger, e.g. once a LoggingServiceProvider
// has built the configured one.
func (c *Container) SetLogger(logger *zap.Logger) {
	if logger == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a transient (new instance each Make) factory.
//
//	// Laravel: $app->bind(UserRepository::class, fn($app) => new EloquentUserRepository($app))
//	c.Bind("UserRepository", func(c *container.Container) any {
//	    return &EloquentUserRepository{}
//	})
func (c *Container) Bind(abstract string, factory Factory) {
	c.register(abstract, nil, factory, Transient)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	// Laravel: $app->singleton(Cache::class, fn($app) => new RedisCache($app))
//	c.Singleton("cache", func(c *container.Container) any { return cache.New() })
func (c *Container) Singleton(abstract string, factory Factory) {
	c.register(abstract, nil, factory, Singleton)
}

// Instance registers a pre-built value as a singleton.
//
//	// Laravel: $app->instance(Config::class, $config)
//	c.Instance("config", myConfig)
func (c *Container) Instance(abstract string, instance any) {
	comp := c.register(abstract, nil, func(*Container) any { return instance }, Singleton)
	c.mu.Lock()
	c.instances[comp.abstract] = instance
	c.mu.Unlock()
}

// register creates or updates the component for abstract. Rebinding drops
// any cached singleton so it is rebuilt with the new factory; the property
// bag survives.
func (c *Container) register(abstract string, typ reflect.Type, factory Factory, lifestyle Lifestyle) *Component {
	c.mu.Lock()
	comp := c.componentLocked(abstract, typ)
	delete(c.instances, comp.abstract)
	logger := c.logger
	c.mu.Unlock()

	comp.set(factory, lifestyle)
	logger.Debug("component registered",
		zap.String("abstract", comp.abstract),
		zap.Stringer("lifestyle", lifestyle))
	return comp
}

// componentLocked returns the component for abstract, creating it when
// missing (must hold mu.Lock).
func (c *Container) componentLocked(abstract string, typ reflect.Type) *Component {
	key := c.canonical(abstract)
	comp, ok := c.components[key]
	if !ok {
		comp = newComponent(key, typ)
		c.components[key] = comp
		c.order = append(c.order, key)
		return comp
	}
	if typ != nil {
		comp.mu.Lock()
		if comp.typ == nil {
			comp.typ = typ
		}
		comp.mu.Unlock()
	}
	return comp
}

// Alias registers an alternative name for an abstract.
//
//	// Laravel: $app->alias(Cache::class, 'cache')
//	c.Alias("cache", "cacheManager")
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Make resolves an abstract from the container.
//
//	// Laravel: $app->make(UserRepository::class)
//	repo := c.Make("UserRepository")
func (c *Container) Make(abstract string) any {
	c.mu.RLock()
	key := c.canonical(abstract)
	inst, cached := c.instances[key]
	comp := c.components[key]
	c.mu.RUnlock()

	if cached {
		return inst
	}
	if comp == nil {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	factory, lifestyle := comp.snapshot()
	if factory == nil {
		panic(fmt.Sprintf("container: component [%s] has no factory", abstract))
	}

	// The factory runs without the lock so it may resolve its own dependencies.
	instance := factory(c)

	if lifestyle == Singleton {
		c.mu.Lock()
		if existing, ok := c.instances[key]; ok {
			instance = existing
		} else {
			c.instances[key] = instance
		}
		c.mu.Unlock()
	}

	c.fireAfterResolving(key, instance)
	return instance
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Bound returns true if an abstract has been registered.
//
//	// Laravel: $app->bound(UserRepository::class)
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	if _, ok := c.instances[key]; ok {
		return true
	}
	comp, ok := c.components[key]
	if !ok {
		return false
	}
	factory, _ := comp.snapshot()
	return factory != nil
}

// Resolved returns true if the abstract has a cached singleton instance.
//
//	// Laravel: $app->resolved(Cache::class)
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Forget removes all registrations for an abstract (component + instance).
//
//	// Laravel: $app->forgetInstance(Cache::class)
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.components, key)
	delete(c.instances, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Flush resets the entire container.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.components = make(map[string]*Component)
	c.order = nil
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
}

// Bindings returns all registered abstract keys in registration order.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Components returns every component record in registration order.
func (c *Container) Components() []*Component {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Component, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.components[k])
	}
	return out
}

// Component returns the record registered under abstract (or an alias of it).
func (c *Container) Component(abstract string) (*Component, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	comp, ok := c.components[c.canonical(abstract)]
	return comp, ok
}

// canonical resolves an alias to its canonical key.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// ── Callbacks ─────────────────────────────────────────────────────────────────

// AfterResolving registers a callback fired after any abstract is resolved.
//
//	// Laravel: $app->afterResolving(fn($object, $app) => ...)
func (c *Container) AfterResolving(cb func(abstract string, instance any)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.afterResolving = append(c.afterResolving, cb)
}

func (c *Container) fireAfterResolving(abstract string, instance any) {
	c.mu.RLock()
	cbs := c.afterResolving
	c.mu.RUnlock()
	for _, cb := range cbs {
		cb(abstract, instance)
	}
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that calls Make and type-asserts the result.
//
//	// Instead of: db := c.Make("db").(*sql.DB)
//	// Write:      db := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%s]: [%s] resolved to %T", reflect.TypeFor[T](), abstract, instance))
	}
	return typed
}

// TryResolve is like Resolve but returns (T, false) instead of panicking when
// the abstract is unbound or resolves to another type.
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	var zero T
	if !c.Bound(abstract) {
		return zero, false
	}
	typed, ok := c.Make(abstract).(T)
	return typed, ok
}
