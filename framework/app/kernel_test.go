package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/app"
	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/events"
)

type Deployed struct{ Ref string }

type Notifier struct{ refs []string }

func (n *Notifier) OnDeployed(e Deployed) { n.refs = append(n.refs, e.Ref) }

func newApp(t *testing.T, listen ...func(*container.Container)) *app.Application {
	t.Helper()
	t.Setenv("APP_ENV", "testing")
	t.Setenv("APP_DEBUG", "false")
	t.Setenv("LOG_LEVEL", "error")
	return app.New([]string{filepath.Join(t.TempDir(), "missing.env")}, listen...)
}

func listenDeployed(c *container.Container) {
	reg := container.For[*Notifier](c).
		UsingFactory(func(*container.Container) *Notifier { return &Notifier{} }).
		LifestyleSingleton()
	events.EventOf[Deployed](events.ListensTo(reg)).With("OnDeployed")
}

func TestNew_CoreBindings(t *testing.T) {
	a := newApp(t)

	assert.Equal(t, "testing", a.Environment())
	assert.True(t, a.IsTesting())
	assert.False(t, a.IsDebug())
	assert.Same(t, a.Config(), container.Resolve[any](a.Container, "configuration"))
	assert.Same(t, container.Resolve[*zap.Logger](a.Container, "logger"), a.Logger())
}

func TestNew_ListenersWiredAtRegistration(t *testing.T) {
	a := newApp(t, listenDeployed)
	a.Boot()

	wirings := a.Listeners()
	require.Len(t, wirings, 1)

	n := container.Resolve[*Notifier](a.Container, wirings[0].Abstract)
	require.NoError(t, wirings[0].Invoke(n, Deployed{Ref: "v1"}))
	assert.Equal(t, []string{"v1"}, n.refs)
}

func TestNew_MalformedListenerHaltsBootstrap(t *testing.T) {
	assert.Panics(t, func() {
		newApp(t, func(c *container.Container) {
			events.ListensTo(container.For[*Notifier](c)).Event(nil).With("OnDeployed")
		})
	})
}

func TestInspector_IsDeferredUntilResolved(t *testing.T) {
	a := newApp(t, listenDeployed)
	require.False(t, a.Resolved("inspector"))

	rec := httptest.NewRecorder()
	a.Inspector().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listeners", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OnDeployed")
	assert.True(t, a.Resolved("inspector"))
}

func TestHandler_MountsInspectorUnderPrefix(t *testing.T) {
	t.Setenv("INSPECT_PREFIX", "/_debug")
	a := newApp(t, listenDeployed)
	h := a.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_debug/listeners", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OnDeployed")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listeners", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServe_DisabledReturnsImmediately(t *testing.T) {
	t.Setenv("INSPECT_ENABLED", "false")
	a := newApp(t)

	require.NoError(t, a.Serve(context.Background()))
	assert.True(t, a.Providers.Booted())
}

func TestServe_StopsWithContext(t *testing.T) {
	t.Setenv("INSPECT_ENABLED", "true")
	t.Setenv("INSPECT_ADDR", "127.0.0.1:0")
	a := newApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, a.Serve(ctx))
}
