package container

import (
	"fmt"
	"reflect"
)

// Registration is the typed, fluent handle to a component record.
//
//	// Castle Windsor: Component.For<Mailer>().UsingFactoryMethod(...).LifestyleSingleton()
//	container.For[*Mailer](c).
//	    UsingFactory(func(c *container.Container) *Mailer { return &Mailer{} }).
//	    LifestyleSingleton()
//
// Every fluent method mutates the shared record and returns the same handle,
// so extensions can keep chaining configuration onto it.
type Registration[T any] struct {
	*Component
	container *Container
}

// For starts (or resumes) the typed registration of T. The abstract defaults
// to KeyOf[T](); pass one explicitly to register several components of the
// same type. Calling For twice with the same abstract yields handles onto the
// same record.
func For[T any](c *Container, abstract ...string) *Registration[T] {
	typ := reflect.TypeFor[T]()
	key := KeyOf[T]()
	if len(abstract) > 0 && abstract[0] != "" {
		key = abstract[0]
	}

	c.mu.Lock()
	comp := c.componentLocked(key, typ)
	c.mu.Unlock()

	if existing := comp.Type(); existing != typ {
		panic(fmt.Sprintf("container: [%s] is registered as %s, not %s", comp.abstract, existing, typ))
	}
	return &Registration[T]{Component: comp, container: c}
}

// Container returns the container the registration belongs to.
func (r *Registration[T]) Container() *Container { return r.container }

// UsingFactory sets the factory, keeping the current lifestyle.
func (r *Registration[T]) UsingFactory(factory func(c *Container) T) *Registration[T] {
	r.container.register(r.abstract, nil, func(c *Container) any { return factory(c) }, r.Lifestyle())
	return r
}

// Instance registers a pre-built value for the component.
func (r *Registration[T]) Instance(instance T) *Registration[T] {
	r.container.Instance(r.abstract, instance)
	return r
}

// LifestyleSingleton caches the first resolved instance.
func (r *Registration[T]) LifestyleSingleton() *Registration[T] {
	r.setLifestyle(Singleton)
	return r
}

// LifestyleTransient builds a new instance on every resolve.
func (r *Registration[T]) LifestyleTransient() *Registration[T] {
	r.setLifestyle(Transient)
	return r
}

func (r *Registration[T]) setLifestyle(l Lifestyle) {
	r.mu.Lock()
	r.lifestyle = l
	r.mu.Unlock()
}

// Alias registers an alternative name for the component.
func (r *Registration[T]) Alias(alias string) *Registration[T] {
	r.container.Alias(r.abstract, alias)
	return r
}

// ExtendedProperty attaches an arbitrary value to the registration.
//
//	// Castle Windsor: .ExtendedProperties(Property.ForKey("k").Eq(v))
//	reg.ExtendedProperty("k", v)
func (r *Registration[T]) ExtendedProperty(key, value any) *Registration[T] {
	r.props.Set(key, value)
	return r
}

// Make resolves the component.
func (r *Registration[T]) Make() T {
	return Resolve[T](r.container, r.abstract)
}

// ── Reflect helpers ───────────────────────────────────────────────────────────

// KeyOf returns the default abstract for T: its package-qualified name, with
// a leading "*" for pointer types so Foo and *Foo never share a key.
//
//	container.KeyOf[*UserRepository]()  // "*example.com/app.UserRepository"
func KeyOf[T any]() string {
	return typeName(reflect.TypeFor[T]())
}

// TypeKey returns the package-qualified type name of v's dynamic type with
// pointers dereferenced, useful as a stable abstract key for interfaces.
//
//	key := container.TypeKey((*UserRepository)(nil))  // "example.com/app.UserRepository"
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return typeName(t)
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		return "*" + typeName(t.Elem())
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
