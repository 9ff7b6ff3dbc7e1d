package events

import (
	"fmt"
	"reflect"
)

// Key identifies one listener binding inside a registration's property bag.
//
// It compares by runtime type identity rather than by type name, so two
// distinct types that print the same (generic instantiations, types from
// different packages sharing a name) never collide.
type Key struct {
	Event     reflect.Type
	Declaring reflect.Type
	Method    string
}

// String renders the key for logs and the inspector.
func (k Key) String() string {
	return fmt.Sprintf("listener:%s|%s|%s", typeString(k.Event), typeString(k.Declaring), k.Method)
}
