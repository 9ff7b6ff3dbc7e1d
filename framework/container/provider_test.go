package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// ── stub providers ────────────────────────────────────────────────────────────

type eagerProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *eagerProvider) Register(app *container.Container) {
	p.registerCalls++
	app.Singleton("eager-svc", func(c *container.Container) any { return "eager" })
}

func (p *eagerProvider) Boot(app *container.Container) {
	p.bootCalls++
}

// deferredProvider is lazy — only registered when "deferred-svc" is first resolved.
type deferredProvider struct {
	container.BaseProvider
	registerCalls int
	bootCalls     int
}

func (p *deferredProvider) Register(app *container.Container) {
	p.registerCalls++
	app.Singleton("deferred-svc", func(c *container.Container) any { return "deferred-value" })
}

func (p *deferredProvider) Boot(app *container.Container) {
	p.bootCalls++
}

func (p *deferredProvider) IsDeferred() bool   { return true }
func (p *deferredProvider) Provides() []string { return []string{"deferred-svc"} }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

func TestRegistry_EagerProvider_RegisterCalledImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &eagerProvider{}
	reg.Register(p)

	assert.Equal(t, 1, p.registerCalls)
	assert.Zero(t, p.bootCalls, "Boot() must wait for registry.Boot()")
}

func TestRegistry_Boot_RunsOnceAndResolves(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)
	p := &eagerProvider{}
	reg.Register(p)

	reg.Boot()
	reg.Boot()

	assert.True(t, reg.Booted())
	assert.Equal(t, 1, p.bootCalls)
	assert.Equal(t, "eager", c.Make("eager-svc"))
}

func TestRegistry_DuplicateRegister_Ignored(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())

	p := &eagerProvider{}
	reg.Register(p)
	reg.Register(p)

	assert.Equal(t, 1, p.registerCalls)
	assert.Len(t, reg.Providers(), 1)
}

func TestRegistry_RegisterAfterBoot_BootsImmediately(t *testing.T) {
	reg := container.NewProviderRegistry(container.New())
	reg.Boot()

	p := &eagerProvider{}
	reg.Register(p)

	assert.Equal(t, 1, p.bootCalls)
}

// ── Deferred providers ────────────────────────────────────────────────────────

func TestRegistry_DeferredProvider_RegisteredOnFirstMake(t *testing.T) {
	c := container.New()
	reg := container.NewProviderRegistry(c)

	p := &deferredProvider{}
	reg.Register(p)
	reg.Boot()

	require.Zero(t, p.registerCalls, "deferred Register() must wait for Make()")
	assert.Empty(t, reg.Providers(), "deferred providers are not eager")

	assert.Equal(t, "deferred-value", c.Make("deferred-svc"))
	assert.Equal(t, "deferred-value", c.Make("deferred-svc"))
	assert.Equal(t, 1, p.registerCalls)
	assert.Equal(t, 1, p.bootCalls, "booted on load because the registry was already booted")
}

// lazyProvider claims "lazy-svc" but never binds it.
type lazyProvider struct {
	container.BaseProvider
}

func (p *lazyProvider) Register(app *container.Container) {}
func (p *lazyProvider) IsDeferred() bool                  { return true }
func (p *lazyProvider) Provides() []string                { return []string{"lazy-svc"} }

func TestRegistry_DeferredProvider_MissingBindingPanics(t *testing.T) {
	c := container.New()
	container.NewProviderRegistry(c).Register(&lazyProvider{})

	assert.PanicsWithValue(t,
		"container: deferred provider *container_test.lazyProvider did not bind [lazy-svc]",
		func() { c.Make("lazy-svc") })
}

// ── BaseProvider defaults ─────────────────────────────────────────────────────

func TestBaseProvider_Defaults(t *testing.T) {
	var p container.BaseProvider
	p.Boot(container.New())

	assert.False(t, p.IsDeferred())
	assert.Empty(t, p.Provides())
}
