package reflectx

import (
	"fmt"
	"math"
	"reflect"
	"runtime"

	"github.com/dozm/omni/errorx"
)

func GetOutParameters(funcType reflect.Type) []reflect.Type {
	if funcType.Kind() != reflect.Func {
		panic(fmt.Errorf("the kind of type '%v' is not function", funcType))
	}
	n := funcType.NumOut()
	paramTypes := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		paramTypes[i] = funcType.Out(i)
	}
	return paramTypes
}

func GetInParameters(funcType reflect.Type) []reflect.Type {
	if funcType.Kind() != reflect.Func {
		panic(fmt.Errorf("the kind of type '%v' is not function", funcType))
	}
	n := funcType.NumIn()
	paramTypes := make([]reflect.Type, n)
	for i := 0; i < n; i++ {
		paramTypes[i] = funcType.In(i)
	}
	return paramTypes
}

func IsErrorType(t reflect.Type) bool {
	et := reflect.TypeOf((*error)(nil)).Elem()
	return t.AssignableTo(et)
}

func GetFuncName(f any) string {
	rv := reflect.ValueOf(f)
	if rv.Kind() != reflect.Func {
		panic("the argument is not a function")
	}
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		return fn.Name()
	}
	return rv.Type().String()
}

func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// TypeKey returns the identifier of t used by type based autowiring:
// the package path and the type name, with one pointer level stripped.
// Types without a package path fall back to their string form.
func TypeKey(t reflect.Type) string {
	if t == nil {
		return ""
	}
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.PkgPath() == "" || t.Name() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

func KeyOf[T any]() string {
	return TypeKey(TypeOf[T]())
}

// Coerce adapts a resolved value to the parameter type t.
//
// Assignable values pass through, pointers are dereferenced when their element
// fits, nil becomes the zero value of nillable types and numbers are converted
// to other numeric kinds when the conversion loses nothing.
func Coerce(v any, t reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch t.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, &errorx.TypeIncompatibilityError{To: t, From: nil}
	}

	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(t) {
		return rv, nil
	}

	if rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Type().AssignableTo(t) {
		return rv.Elem(), nil
	}

	if isNumeric(rv.Kind()) && isNumeric(t.Kind()) {
		if out, ok := convertNumber(rv, t); ok {
			return out, nil
		}
	}

	return reflect.Value{}, &errorx.TypeIncompatibilityError{To: t, From: rv.Type()}
}

// exactly representable integers in a float64
const maxExactFloat = 1 << 53

// convertNumber converts between numeric kinds when no value is lost:
// the target range holds the value, signs survive and floats carry no
// fraction into integers.
func convertNumber(rv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()

	switch {
	case isInt(rv.Kind()):
		return out, setInt(out, rv.Int())
	case isUint(rv.Kind()):
		u := rv.Uint()
		if u > math.MaxInt64 {
			if !isUint(t.Kind()) || out.OverflowUint(u) {
				return out, false
			}
			out.SetUint(u)
			return out, true
		}
		return out, setInt(out, int64(u))
	default:
		return out, setFloat(out, rv.Float())
	}
}

func setInt(out reflect.Value, n int64) bool {
	switch {
	case isInt(out.Kind()):
		if out.OverflowInt(n) {
			return false
		}
		out.SetInt(n)
	case isUint(out.Kind()):
		if n < 0 || out.OverflowUint(uint64(n)) {
			return false
		}
		out.SetUint(uint64(n))
	default:
		if n > maxExactFloat || n < -maxExactFloat {
			return false
		}
		out.SetFloat(float64(n))
		if out.Float() != float64(n) {
			return false
		}
	}
	return true
}

func setFloat(out reflect.Value, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if isFloat(out.Kind()) {
			out.SetFloat(f)
			return true
		}
		return false
	}

	switch {
	case isFloat(out.Kind()):
		if out.OverflowFloat(f) {
			return false
		}
		out.SetFloat(f)
		return true
	case f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64:
		return false
	default:
		return setInt(out, int64(f))
	}
}

func isNumeric(k reflect.Kind) bool {
	return isInt(k) || isUint(k) || isFloat(k)
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
