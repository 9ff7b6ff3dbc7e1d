package events

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidBinding marks a malformed listener declaration: a missing
	// handler method, a handler that returns a value, or one whose single
	// parameter is not the declared event type.
	ErrInvalidBinding = errors.New("events: invalid binding configuration")

	// ErrArgumentMismatch is returned by Wiring.Invoke when the component or
	// event passed in does not fit the bound handler.
	ErrArgumentMismatch = errors.New("events: argument does not match handler")
)

// BindingError describes which (component, event, method) triple is malformed.
type BindingError struct {
	Component reflect.Type
	Event     reflect.Type
	Method    string
	Reason    string
}

func (e *BindingError) Error() string {
	method := e.Method
	if method == "" {
		method = "<missing>"
	}
	return fmt.Sprintf("events: cannot bind %s.%s to event %s: %s",
		typeString(e.Component), method, typeString(e.Event), e.Reason)
}

func (e *BindingError) Unwrap() error { return ErrInvalidBinding }

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
