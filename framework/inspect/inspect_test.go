package inspect_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/events"
	"github.com/km-arc/go-laravel-listeners/framework/inspect"
)

type OrderPlaced struct{ ID int }

type Invoicer struct{}

func (i *Invoicer) OnOrderPlaced(OrderPlaced) {}

func setup(t *testing.T) http.Handler {
	t.Helper()
	c := container.New()
	reg := container.For[*Invoicer](c).
		UsingFactory(func(*container.Container) *Invoicer { return &Invoicer{} }).
		LifestyleSingleton()
	events.EventOf[OrderPlaced](events.ListensTo(reg)).With("OnOrderPlaced")
	return inspect.Handler(c)
}

func get(t *testing.T, h http.Handler, path string, v any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	return rec.Code
}

func TestBindings(t *testing.T) {
	var got []inspect.Binding
	code := get(t, setup(t), "/bindings", &got)

	require.Equal(t, http.StatusOK, code)
	require.Len(t, got, 2)
	assert.Equal(t, "container", got[0].Abstract)
	assert.True(t, got[0].Resolved)
	assert.Equal(t, "*inspect_test.Invoicer", got[1].Type)
	assert.Equal(t, "singleton", got[1].Lifestyle)
	assert.False(t, got[1].Resolved)
	assert.Equal(t, 1, got[1].Properties)
}

func TestListeners(t *testing.T) {
	var got []inspect.Listener
	code := get(t, setup(t), "/listeners", &got)

	require.Equal(t, http.StatusOK, code)
	require.Len(t, got, 1)
	assert.Equal(t, "inspect_test.OrderPlaced", got[0].Event)
	assert.Equal(t, "OnOrderPlaced", got[0].Method)
	assert.Equal(t, container.KeyOf[*Invoicer](), got[0].Component)
	assert.Contains(t, got[0].Key, "listener:")
}

func TestListeners_FilteredByEvent(t *testing.T) {
	h := setup(t)

	var got []inspect.Listener
	require.Equal(t, http.StatusOK, get(t, h, "/listeners/inspect_test.OrderPlaced", &got))
	assert.Len(t, got, 1)

	var miss map[string]string
	assert.Equal(t, http.StatusNotFound, get(t, h, "/listeners/inspect_test.Nope", &miss))
	assert.Equal(t, "no listeners for inspect_test.Nope", miss["message"])
}

func TestListeners_EmptyContainerEncodesEmptyList(t *testing.T) {
	rec := httptest.NewRecorder()
	inspect.Handler(container.New()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listeners", nil))

	assert.JSONEq(t, "[]", rec.Body.String())
}
