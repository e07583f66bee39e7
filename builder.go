package omni

import (
	"github.com/dozm/omni/reflectx"
)

// Registrar is the registration surface shared by StaticContainer and
// OmniContainer.
type Registrar interface {
	SetValue(id string, value any)
	SetValues(values map[string]any)
	SetFactory(id string, fn any, args ...Arg)
	SetSingletonFactory(id string, fn any, args ...Arg)
	SetClass(id string, className string)
	SetSingletonClass(id string, className string)
	SetAlias(id string, targetID string)
}

var (
	_ Registrar = (*StaticContainer)(nil)
	_ Registrar = (*OmniContainer)(nil)

	_ Cascading = (*StaticContainer)(nil)
	_ Cascading = (*DynamicContainer)(nil)
	_ Cascading = (*CompositeContainer)(nil)
	_ Cascading = (*OmniContainer)(nil)
)

// Register value under the type key of T, where type based autowiring looks
// for it.
func AddValue[T any](r Registrar, value T) {
	r.SetValue(reflectx.KeyOf[T](), value)
}

// Register the factory fn under the type key of T.
// fn is invoked on every resolution.
func AddFactory[T any](r Registrar, fn any, args ...Arg) {
	r.SetFactory(reflectx.KeyOf[T](), fn, args...)
}

// Register the factory fn under the type key of T.
// fn is invoked at most once successfully.
func AddSingletonFactory[T any](r Registrar, fn any, args ...Arg) {
	r.SetSingletonFactory(reflectx.KeyOf[T](), fn, args...)
}

// Register the class T under its own type key. T must be registered in the
// class registry of the container.
func AddClass[T any](r Registrar) {
	r.SetClass(reflectx.KeyOf[T](), ClassName[T]())
}

func AddSingletonClass[T any](r Registrar) {
	r.SetSingletonClass(reflectx.KeyOf[T](), ClassName[T]())
}

// Bind makes the type key of I resolve as the type key of T, typically an
// interface to one of its implementations.
func Bind[I any, T any](r Registrar) {
	r.SetAlias(reflectx.KeyOf[I](), reflectx.KeyOf[T]())
}
