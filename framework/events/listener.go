package events

import (
	"reflect"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// Listener is the intermediate step of the fluent listener API. It only
// remembers the registration, so the component type is inferred once.
//
//	events.ListensTo(reg).Event(reflect.TypeFor[UserCreated]()).With("OnUserCreated")
//	events.EventOf[UserCreated](events.ListensTo(reg)).With("OnUserCreated")
type Listener[T any] struct {
	reg *container.Registration[T]
}

// ListensTo starts a listener declaration on reg.
func ListensTo[T any](reg *container.Registration[T]) *Listener[T] {
	return &Listener[T]{reg: reg}
}

// Event names the event type the handler accepts.
func (l *Listener[T]) Event(eventType reflect.Type) *EventBinding[T] {
	return &EventBinding[T]{reg: l.reg, eventType: eventType}
}

// EventOf is Event with the event type given as a type argument.
func EventOf[E, T any](l *Listener[T]) *EventBinding[T] {
	return l.Event(reflect.TypeFor[E]())
}

// EventBinding is the last step: pick the handler method.
type EventBinding[T any] struct {
	reg       *container.Registration[T]
	eventType reflect.Type
}

// With binds the named method and returns the original registration.
// It panics with a *BindingError if the method does not fit.
func (b *EventBinding[T]) With(methodName string) *container.Registration[T] {
	return ListensToEventMethod(b.reg, b.eventType, methodName)
}

// WithMethod binds an already looked-up method.
func (b *EventBinding[T]) WithMethod(method reflect.Method) *container.Registration[T] {
	return ListensToEvent(b.reg, b.eventType, method)
}
