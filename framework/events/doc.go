// Package events lets a component registered in the container declare that
// it listens to a typed event and which of its methods handles it.
//
// Each declaration is validated when it is made, turned into an Invoker once,
// and stored as a Wiring in the registration's property bag under a Key built
// from (event type, declaring type, method name). Dispatching events is left
// to whatever bus reads those wirings back (see Collect and ListenersFor).
//
// # Declaring listeners
//
//	type Logger struct{}
//	func (l *Logger) OnStartup(e StartupEvent) { ... }
//
//	reg := container.For[*Logger](c).UsingFactory(newLogger)
//
//	// By method name
//	events.ListensTo(reg).Event(reflect.TypeFor[StartupEvent]()).With("OnStartup")
//	events.EventOf[StartupEvent](events.ListensTo(reg)).With("OnStartup")
//
//	// Without the intermediate step
//	events.ListensToEventMethod(reg, reflect.TypeFor[StartupEvent](), "OnStartup")
//
//	// Error-returning forms
//	err := events.BindMethod(reg, reflect.TypeFor[StartupEvent](), "OnStartup")
//
//	// Compile-time checked
//	events.On(reg, "OnStartup", (*Logger).OnStartup)
//	events.Handles[StartupEvent](reg) // *Logger must implement Handle(StartupEvent)
//
// A handler must return nothing and take exactly one parameter whose type is
// the declared event type. Anything else fails with ErrInvalidBinding and
// leaves the registration untouched; the fluent forms panic.
//
// # Reading wirings
//
//	for _, w := range events.Wirings(reg) {
//	    _ = w.Invoke(reg.Make(), StartupEvent{})
//	}
package events
