package events

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// Handler is implemented by components that handle events of type E.
type Handler[E any] interface {
	Handle(E)
}

// Handles binds T's Handle(E) method. The shape is checked by the compiler,
// so no reflection happens at bind or invoke time.
//
//	events.Handles[UserCreated](container.For[*WelcomeMailer](c))
func Handles[E any, T Handler[E]](reg *container.Registration[T]) *container.Registration[T] {
	return On(reg, "Handle", func(c T, e E) { c.Handle(e) })
}

// On binds a typed function, usually a method expression, under name.
//
//	events.On(reg, "OnStartup", (*Logger).OnStartup)
func On[T, E any](reg *container.Registration[T], name string, fn func(T, E)) *container.Registration[T] {
	eventType := reflect.TypeFor[E]()
	switch {
	case name == "":
		panic(&BindingError{Component: reg.Type(), Event: eventType, Reason: "handler name is empty"})
	case fn == nil:
		panic(&BindingError{Component: reg.Type(), Event: eventType, Method: name, Reason: "handler func is nil"})
	}

	key := Key{Event: eventType, Declaring: reg.Type(), Method: name}
	reg.Properties().Set(key, Wiring{
		Key:       key,
		EventType: eventType,
		invoke: func(c, e any) {
			fn(cast[T](c), cast[E](e))
		},
	})
	reg.Container().Logger().Debug("listener bound",
		zap.String("component", reg.Abstract()),
		zap.Stringer("event", eventType),
		zap.String("method", name))
	return reg
}

func cast[V any](v any) V {
	if v == nil {
		var zero V
		return zero
	}
	return v.(V)
}
