// Package omni is a dependency injection container keyed by string
// identifiers. Values, factories, singletons, aliases and registered classes
// are resolved lazily, with constructor and factory parameters autowired by
// name or by type.
//
// An OmniContainer composes a StaticContainer (explicit registrations) and a
// DynamicContainer (classes claimed by namespace) behind a CompositeContainer,
// and resolves its own alias table before either of them is consulted.
// Nested autowiring always re-enters through the top level container.
package omni

import (
	"reflect"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/reflectx"
)

// Container is a lookup source.
type Container interface {
	// Has reports whether Get can produce a value for id without a
	// NotFoundError. It does not guarantee that Get succeeds.
	Has(id string) bool
	Get(id string) (any, error)
}

// Cascading is a container that resolves the dependencies of its entries
// through a root container, which defaults to the container itself.
type Cascading interface {
	Container
	SetRoot(root Container)
}

// exister is a container that can report a failed existence check, such as
// an alias cycle, as an error instead of panicking in Has.
type exister interface {
	Exists(id string) (bool, error)
}

func exists(c Container, id string) (bool, error) {
	if e, ok := c.(exister); ok {
		return e.Exists(id)
	}
	return c.Has(id), nil
}

// ContainerID is the identifier under which an OmniContainer exposes itself.
var ContainerID = reflectx.KeyOf[Container]()

// Get the value of the identifier id from the container c as a T.
func Get[T any](c Container, id string) T {
	result, err := TryGet[T](c, id)
	if err != nil {
		panic(err)
	}
	return result
}

func TryGet[T any](c Container, id string) (result T, err error) {
	v, err := c.Get(id)
	if err != nil {
		return
	}

	if v == nil {
		return
	}

	result, ok := v.(T)
	if !ok {
		err = &errorx.TypeIncompatibilityError{To: reflectx.TypeOf[T](), From: reflect.TypeOf(v)}
		return
	}

	return
}

// GetByType resolves the type key of T, as type based autowiring would.
func GetByType[T any](c Container) T {
	return Get[T](c, reflectx.KeyOf[T]())
}

func TryGetByType[T any](c Container) (T, error) {
	return TryGet[T](c, reflectx.KeyOf[T]())
}

// Invoke the function fn.
// The input parameters of fn are resolved from the Container c by the
// arguments resolver r. fn may be a *Callable or a plain function described
// by args.
func Invoke(c Container, r ArgumentsResolver, fn any, args ...Arg) (any, error) {
	callable, err := toCallable(fn, args)
	if err != nil {
		return nil, err
	}

	in, err := r.ResolveArguments(callable.Signature, c)
	if err != nil {
		return nil, err
	}

	return callable.Call(in)
}
