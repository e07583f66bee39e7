package reflectx

import (
	"fmt"
	"reflect"
)

// TypeKind classifies the declared type of a parameter.
type TypeKind byte

const (
	// TypeKind_None is a parameter declared as the empty interface.
	TypeKind_None TypeKind = iota
	// TypeKind_Named is a single named type.
	TypeKind_Named
	// TypeKind_Complex is an anonymous interface combining methods or other interfaces.
	TypeKind_Complex
)

func (k TypeKind) String() string {
	switch k {
	case TypeKind_None:
		return "none"
	case TypeKind_Named:
		return "named"
	case TypeKind_Complex:
		return "complex"
	default:
		return "unknown"
	}
}

func KindOf(t reflect.Type) TypeKind {
	if t == nil {
		return TypeKind_None
	}
	if t.Kind() == reflect.Interface && t.Name() == "" {
		if t.NumMethod() == 0 {
			return TypeKind_None
		}
		return TypeKind_Complex
	}
	return TypeKind_Named
}

// IsBuiltin reports whether t is a predeclared type or an unnamed composite
// type (slice, map, func, chan, array, anonymous struct), looking through one
// pointer level.
func IsBuiltin(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	return t.PkgPath() == ""
}

// Parameter describes one input of a callable.
type Parameter struct {
	Name       string
	Type       reflect.Type
	Variadic   bool
	Default    any
	HasDefault bool
}

func (p Parameter) TypeKind() TypeKind {
	return KindOf(p.Type)
}

func (p Parameter) IsBuiltin() bool {
	return p.Type != nil && IsBuiltin(p.Type)
}

// Signature is the describable signature of a function or constructor.
type Signature struct {
	// Name is used in error messages only.
	Name   string
	Params []Parameter
}

func (s Signature) String() string {
	return s.Name
}

// DescribeFunc builds the signature of the function type ft. Parameter names
// and defaults are not available through reflection and are left empty.
func DescribeFunc(ft reflect.Type, name string) Signature {
	if ft.Kind() != reflect.Func {
		panic(fmt.Errorf("the kind of type '%v' is not function", ft))
	}

	in := GetInParameters(ft)
	params := make([]Parameter, len(in))
	for i, t := range in {
		params[i] = Parameter{
			Type:     t,
			Variadic: ft.IsVariadic() && i == len(in)-1,
		}
	}

	return Signature{Name: name, Params: params}
}
