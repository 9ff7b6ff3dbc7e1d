package events

import (
	"fmt"
	"reflect"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// Invoker calls a bound handler on component with event.
type Invoker func(component, event any)

// Wiring is the value stored in a registration's property bag for each
// listener binding: the event type and the invoker built for it.
type Wiring struct {
	Key       Key
	EventType reflect.Type
	invoke    Invoker
}

// Invoker returns the raw invoker. It panics if handed arguments of the
// wrong type; use Invoke for a checked call.
func (w Wiring) Invoker() Invoker { return w.invoke }

// Invoke calls the handler after checking that component and event fit it.
func (w Wiring) Invoke(component, event any) error {
	if w.invoke == nil {
		return fmt.Errorf("%w: wiring %s has no invoker", ErrArgumentMismatch, w.Key)
	}
	if component == nil && w.Key.Declaring.Kind() == reflect.Interface {
		return fmt.Errorf("%w: component is a nil %s", ErrArgumentMismatch, w.Key.Declaring)
	}
	if !fits(component, w.Key.Declaring) {
		return fmt.Errorf("%w: component %T is not %s", ErrArgumentMismatch, component, w.Key.Declaring)
	}
	if !fits(event, w.EventType) {
		return fmt.Errorf("%w: event %T is not %s", ErrArgumentMismatch, event, w.EventType)
	}
	w.invoke(component, event)
	return nil
}

func fits(v any, t reflect.Type) bool {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return reflect.TypeOf(v).AssignableTo(t)
}

// ── Read side ─────────────────────────────────────────────────────────────────

// Wirings returns the listener bindings of reg in the order they were made.
func Wirings[T any](reg *container.Registration[T]) []Wiring {
	return WiringsOf(reg.Component)
}

// WiringsOf returns the listener bindings stored on an untyped component.
// Properties written by other extensions are skipped.
func WiringsOf(comp *container.Component) []Wiring {
	var out []Wiring
	comp.Properties().Each(func(key, value any) bool {
		if _, ok := key.(Key); !ok {
			return true
		}
		if w, ok := value.(Wiring); ok {
			out = append(out, w)
		}
		return true
	})
	return out
}

// ComponentWiring pairs a wiring with the component it was bound on.
type ComponentWiring struct {
	Abstract  string
	Component reflect.Type
	Wiring
}

// Collect gathers the wirings of every component in c, in registration order.
func Collect(c *container.Container) []ComponentWiring {
	var out []ComponentWiring
	for _, comp := range c.Components() {
		for _, w := range WiringsOf(comp) {
			out = append(out, ComponentWiring{
				Abstract:  comp.Abstract(),
				Component: comp.Type(),
				Wiring:    w,
			})
		}
	}
	return out
}

// ListenersFor returns the wirings in c whose event type is eventType.
func ListenersFor(c *container.Container, eventType reflect.Type) []ComponentWiring {
	var out []ComponentWiring
	for _, cw := range Collect(c) {
		if cw.EventType == eventType {
			out = append(out, cw)
		}
	}
	return out
}
