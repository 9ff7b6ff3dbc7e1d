package events

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/km-arc/go-laravel-listeners/framework/container"
)

// Bind declares that reg's component handles eventType with method.
//
// method must come from the component's type (reflect.Type.Method or
// MethodByName), return nothing and take exactly one parameter of type
// eventType. On failure nothing is stored and a *BindingError wrapping
// ErrInvalidBinding is returned. Binding the same (event, component, method)
// again replaces the earlier wiring.
func Bind[T any](reg *container.Registration[T], eventType reflect.Type, method reflect.Method) error {
	logger := reg.Container().Logger()

	w, err := newWiring(reg.Type(), eventType, method)
	if err != nil {
		logger.Error("listener binding rejected",
			zap.String("component", reg.Abstract()),
			zap.Error(err))
		return err
	}

	reg.Properties().Set(w.Key, w)
	logger.Debug("listener bound",
		zap.String("component", reg.Abstract()),
		zap.Stringer("event", eventType),
		zap.String("method", method.Name))
	return nil
}

// BindMethod looks methodName up on the component's type and binds it.
func BindMethod[T any](reg *container.Registration[T], eventType reflect.Type, methodName string) error {
	method, ok := reg.Type().MethodByName(methodName)
	if !ok {
		err := &BindingError{
			Component: reg.Type(),
			Event:     eventType,
			Method:    methodName,
			Reason:    "no exported method with that name",
		}
		reg.Container().Logger().Error("listener binding rejected",
			zap.String("component", reg.Abstract()),
			zap.Error(err))
		return err
	}
	return Bind(reg, eventType, method)
}

// ListensToEvent is the fluent form of Bind. A malformed binding is a wiring
// mistake, so it panics and halts configuration.
func ListensToEvent[T any](reg *container.Registration[T], eventType reflect.Type, method reflect.Method) *container.Registration[T] {
	if err := Bind(reg, eventType, method); err != nil {
		panic(err)
	}
	return reg
}

// ListensToEventMethod is the fluent form of BindMethod.
func ListensToEventMethod[T any](reg *container.Registration[T], eventType reflect.Type, methodName string) *container.Registration[T] {
	if err := BindMethod(reg, eventType, methodName); err != nil {
		panic(err)
	}
	return reg
}

// newWiring validates the handler shape and builds its invoker.
func newWiring(component, event reflect.Type, method reflect.Method) (Wiring, error) {
	fail := func(format string, args ...any) (Wiring, error) {
		return Wiring{}, &BindingError{
			Component: component,
			Event:     event,
			Method:    method.Name,
			Reason:    fmt.Sprintf(format, args...),
		}
	}

	if event == nil {
		return fail("event type is nil")
	}
	if method.Type == nil {
		return fail("method is missing")
	}

	// Methods taken from a concrete type carry the receiver as their first
	// parameter; methods taken from an interface type do not.
	var params []reflect.Type
	if method.Func.IsValid() {
		if recv := method.Type.In(0); recv != component {
			return fail("method is declared on %s", recv)
		}
		for i := 1; i < method.Type.NumIn(); i++ {
			params = append(params, method.Type.In(i))
		}
	} else {
		if component.Kind() != reflect.Interface {
			return fail("method has no implementation")
		}
		own, ok := component.MethodByName(method.Name)
		if !ok || own.Type != method.Type {
			return fail("method is not part of %s", component)
		}
		method.Index = own.Index
		for i := 0; i < method.Type.NumIn(); i++ {
			params = append(params, method.Type.In(i))
		}
	}

	if n := method.Type.NumOut(); n != 0 {
		return fail("handler must not return a value, returns %d", n)
	}
	if len(params) != 1 {
		return fail("handler must take exactly one parameter, takes %d", len(params))
	}
	if params[0] != event {
		return fail("handler parameter is %s", params[0])
	}
	// reflect.Value.Call packs variadic arguments itself, so a ...E handler
	// bound to []E would panic on every dispatch.
	if method.Type.IsVariadic() {
		return fail("handler must not be variadic")
	}

	return Wiring{
		Key:       Key{Event: event, Declaring: component, Method: method.Name},
		EventType: event,
		invoke:    newInvoker(component, event, method),
	}, nil
}

// newInvoker builds the late-bound call once; each invocation only packs the
// two arguments.
func newInvoker(component, event reflect.Type, method reflect.Method) Invoker {
	if method.Func.IsValid() {
		fn := method.Func
		return func(c, e any) {
			fn.Call([]reflect.Value{valueOf(c, component), valueOf(e, event)})
		}
	}

	index := method.Index
	return func(c, e any) {
		recv := reflect.New(component).Elem()
		if c != nil {
			recv.Set(reflect.ValueOf(c))
		}
		recv.Method(index).Call([]reflect.Value{valueOf(e, event)})
	}
}

func valueOf(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
