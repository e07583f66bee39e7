package omni

import (
	"fmt"
	"reflect"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/reflectx"
)

// Arg describes a parameter of a callable: the name used by name based
// autowiring and an optional default value. Go reflection knows neither.
type Arg struct {
	Name       string
	Default    any
	HasDefault bool
}

// Named describes a required parameter.
func Named(name string) Arg {
	return Arg{Name: name}
}

// Optional describes a parameter that falls back to def when it cannot be
// resolved.
func Optional(name string, def any) Arg {
	return Arg{Name: name, Default: def, HasDefault: true}
}

// Callable is a function paired with its describable signature.
// The function must return a value and an optional error.
type Callable struct {
	FuncType  reflect.Type
	FuncValue reflect.Value
	Signature reflectx.Signature
	// output parameter types
	Out []reflect.Type
}

// Func describes the function fn. The i-th Arg describes the i-th parameter;
// parameters without an Arg have no name and no default.
// Func panics when fn is not a valid factory function.
func Func(fn any, args ...Arg) *Callable {
	c, err := newCallable(fn, args)
	if err != nil {
		panic(err)
	}
	return c
}

// Call invokes the function with already resolved arguments.
func (c *Callable) Call(args []any) (any, error) {
	params := c.Signature.Params
	if len(args) != len(params) {
		return nil, &errorx.FuncSignatureError{
			Message: fmt.Sprintf("%v expects %d arguments, got %d", c.Signature, len(params), len(args)),
		}
	}

	inValues := make([]reflect.Value, len(args))
	for i, arg := range args {
		v, err := reflectx.Coerce(arg, params[i].Type)
		if err != nil {
			return nil, err
		}
		inValues[i] = v
	}

	var outValues []reflect.Value
	if c.FuncType.IsVariadic() {
		outValues = c.FuncValue.CallSlice(inValues)
	} else {
		outValues = c.FuncValue.Call(inValues)
	}

	numOut := len(outValues)
	if numOut == 1 {
		return outValues[0].Interface(), nil
	} else if numOut == 2 {
		if outValues[1].IsZero() {
			return outValues[0].Interface(), nil
		}
		if err, ok := outValues[1].Interface().(error); ok {
			return nil, err
		}
		return nil, &errorx.FuncSignatureError{Message: "the type of the second out parameter is not error"}
	} else {
		return nil, &errorx.FuncSignatureError{Message: "unexpected output parameters"}
	}
}

func newCallable(fn any, args []Arg) (*Callable, error) {
	if fn == nil {
		return nil, &errorx.FuncSignatureError{Message: "the function is nil"}
	}

	ft := reflect.TypeOf(fn)
	if ft.Kind() != reflect.Func {
		return nil, &errorx.FuncSignatureError{Message: fmt.Sprintf("'%v' is not a function", ft)}
	}

	sig := reflectx.DescribeFunc(ft, reflectx.GetFuncName(fn))
	if len(args) > len(sig.Params) {
		return nil, &errorx.FuncSignatureError{
			Message: fmt.Sprintf("%d parameters described for %v which takes %d", len(args), sig, len(sig.Params)),
		}
	}
	for i, a := range args {
		sig.Params[i].Name = a.Name
		sig.Params[i].Default = a.Default
		sig.Params[i].HasDefault = a.HasDefault
	}

	c := &Callable{
		FuncType:  ft,
		FuncValue: reflect.ValueOf(fn),
		Signature: sig,
		Out:       reflectx.GetOutParameters(ft),
	}

	if err := checkCallable(c); err != nil {
		return nil, err
	}
	return c, nil
}

func checkCallable(c *Callable) error {
	out := c.Out
	numOut := len(out)
	if numOut == 0 || numOut > 2 || (numOut == 2 && !reflectx.IsErrorType(out[1])) {
		return &errorx.FuncSignatureError{
			Message: fmt.Sprintf("%v must return a value and an optional error", c.Signature),
		}
	}
	return nil
}

// toCallable accepts either a *Callable or a plain function.
func toCallable(fn any, args []Arg) (*Callable, error) {
	if c, ok := fn.(*Callable); ok {
		if len(args) > 0 {
			return nil, &errorx.FuncSignatureError{Message: fmt.Sprintf("%v is already described", c.Signature)}
		}
		return c, nil
	}
	return newCallable(fn, args)
}

func mustCallable(fn any, args []Arg) *Callable {
	c, err := toCallable(fn, args)
	if err != nil {
		panic(err)
	}
	return c
}
