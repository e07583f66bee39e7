package omni

import (
	"fmt"
	"reflect"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/reflectx"
	"github.com/dozm/omni/syncx"
)

// Class is a constructible type known to a ClassRegistry.
type Class struct {
	// Name is the type key of Type, see reflectx.TypeKey.
	Name string
	Type reflect.Type
	// Ctor builds an instance. A nil Ctor allocates a zero value.
	Ctor *Callable
	// Abstract classes exist but cannot be instantiated.
	Abstract bool
}

func (c *Class) String() string {
	return c.Name
}

// Signature of the constructor. Classes without a constructor take no
// arguments.
func (c *Class) Signature() reflectx.Signature {
	if c.Ctor == nil {
		return reflectx.Signature{Name: c.Name}
	}
	return c.Ctor.Signature
}

// New builds an instance from resolved constructor arguments.
func (c *Class) New(args []any) (any, error) {
	if c.Abstract {
		return nil, &errorx.InstantiationError{Class: c.Name, Message: "the class is not instantiable"}
	}
	if c.Ctor == nil {
		return reflect.New(baseType(c.Type)).Interface(), nil
	}
	return c.Ctor.Call(args)
}

// ClassRegistry maps class names to classes. Classes are usually registered
// during program initialization; lookups are safe for concurrent use.
type ClassRegistry struct {
	classes *syncx.Map[string, *Class]
}

// DefaultClasses is the registry used by containers unless configured otherwise.
var DefaultClasses = NewClassRegistry()

func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{classes: syncx.NewMap[string, *Class]()}
}

// Add registers class, replacing any class of the same name.
func (r *ClassRegistry) Add(class *Class) {
	r.classes.Store(class.Name, class)
}

func (r *ClassRegistry) Lookup(name string) (*Class, bool) {
	return r.classes.Load(name)
}

func (r *ClassRegistry) Exists(name string) bool {
	_, ok := r.classes.Load(name)
	return ok
}

// Names returns the registered class names in ascending order.
func (r *ClassRegistry) Names() []string {
	return syncx.SortedKeys(r.classes)
}

// RegisterClass registers T in r and returns the class. ctor is a function
// returning T (or *T when T is a struct) and an optional error, described by
// args; a nil ctor allocates a new zero T.
//
// RegisterClass panics when ctor is not a valid constructor of T.
func RegisterClass[T any](r *ClassRegistry, ctor any, args ...Arg) *Class {
	t := reflectx.TypeOf[T]()
	class := &Class{
		Name: reflectx.TypeKey(t),
		Type: t,
	}

	if ctor != nil {
		c := mustCallable(ctor, args)
		if err := checkConstructor(c, t); err != nil {
			panic(err)
		}
		class.Ctor = c
	} else if baseType(t).Kind() == reflect.Interface {
		class.Abstract = true
	}

	r.Add(class)
	return class
}

// RegisterInterface registers the interface type T as an abstract class.
func RegisterInterface[T any](r *ClassRegistry) *Class {
	t := reflectx.TypeOf[T]()
	if t.Kind() != reflect.Interface {
		panic(fmt.Errorf("the type '%v' is not an interface", t))
	}
	return RegisterClass[T](r, nil)
}

// ClassName returns the class name of T.
func ClassName[T any]() string {
	return reflectx.KeyOf[T]()
}

func checkConstructor(ctor *Callable, t reflect.Type) error {
	out := ctor.Out[0]
	if out.AssignableTo(t) || out.AssignableTo(reflect.PointerTo(baseType(t))) {
		return nil
	}
	return &errorx.FuncSignatureError{
		Message: fmt.Sprintf("the constructor %v must return a '%v' and an optional error", ctor.Signature, t),
	}
}

func baseType(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		return t.Elem()
	}
	return t
}
