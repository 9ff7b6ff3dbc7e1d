// Package inspect exposes a read-only JSON view of a container's components
// and the listener wirings attached to them.
//
//	GET /bindings            every abstract, its lifestyle and static type
//	GET /listeners           every listener wiring
//	GET /listeners/{event}   wirings whose event type name matches
package inspect

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/km-arc/go-laravel-listeners/framework/container"
	"github.com/km-arc/go-laravel-listeners/framework/events"
)

// Binding is one row of GET /bindings.
type Binding struct {
	Abstract   string `json:"abstract"`
	Type       string `json:"type,omitempty"`
	Lifestyle  string `json:"lifestyle"`
	Resolved   bool   `json:"resolved"`
	Properties int    `json:"properties"`
}

// Listener is one row of GET /listeners.
type Listener struct {
	Component string `json:"component"`
	Event     string `json:"event"`
	Method    string `json:"method"`
	Key       string `json:"key"`
}

// Handler returns a chi router serving the inspection endpoints for c.
func Handler(c *container.Container) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.SetHeader("Content-Type", "application/json; charset=utf-8"))

	r.Get("/bindings", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Bindings(c))
	})
	r.Get("/listeners", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, Listeners(c, ""))
	})
	r.Get("/listeners/{event}", func(w http.ResponseWriter, req *http.Request) {
		event := chi.URLParam(req, "event")
		found := Listeners(c, event)
		if len(found) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "no listeners for " + event})
			return
		}
		writeJSON(w, http.StatusOK, found)
	})
	return r
}

// Bindings lists every component of c in registration order.
func Bindings(c *container.Container) []Binding {
	comps := c.Components()
	out := make([]Binding, 0, len(comps))
	for _, comp := range comps {
		b := Binding{
			Abstract:   comp.Abstract(),
			Lifestyle:  comp.Lifestyle().String(),
			Resolved:   c.Resolved(comp.Abstract()),
			Properties: comp.Properties().Len(),
		}
		if t := comp.Type(); t != nil {
			b.Type = t.String()
		}
		out = append(out, b)
	}
	return out
}

// Listeners lists the wirings of c, optionally only those whose event type
// prints as event.
func Listeners(c *container.Container, event string) []Listener {
	out := []Listener{}
	for _, cw := range events.Collect(c) {
		name := cw.EventType.String()
		if event != "" && name != event {
			continue
		}
		out = append(out, Listener{
			Component: cw.Abstract,
			Event:     name,
			Method:    cw.Key.Method,
			Key:       cw.Key.String(),
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
