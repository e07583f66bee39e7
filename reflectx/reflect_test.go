package reflectx

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dozm/omni/errorx"
)

func TestCoerce(t *testing.T) {
	v, err := Coerce(3, TypeOf[float64]())
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.Interface())

	p := &point{X: 1}
	v, err = Coerce(p, TypeOf[point]())
	require.NoError(t, err)
	assert.Equal(t, point{X: 1}, v.Interface())

	v, err = Coerce(p, TypeOf[*point]())
	require.NoError(t, err)
	assert.Same(t, p, v.Interface())

	v, err = Coerce(nil, TypeOf[*point]())
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	_, err = Coerce(nil, TypeOf[int]())
	var typeErr *errorx.TypeIncompatibilityError
	assert.True(t, errors.As(err, &typeErr))

	_, err = Coerce("x", TypeOf[point]())
	assert.True(t, errors.As(err, &typeErr))
}

func TestCoerce_Numbers(t *testing.T) {
	converted := []struct {
		v    any
		to   any
		want any
	}{
		{3, int64(0), int64(3)},
		{int64(-5), int8(0), int8(-5)},
		{uint8(200), 0, 200},
		{7, uint16(0), uint16(7)},
		{4.0, 0, 4},
		{float32(1.5), 0.0, 1.5},
		{1 << 20, float32(0), float32(1 << 20)},
	}
	for _, c := range converted {
		v, err := Coerce(c.v, reflect.TypeOf(c.to))
		if assert.NoError(t, err, "%T(%v) to %T", c.v, c.v, c.to) {
			assert.Equal(t, c.want, v.Interface())
		}
	}

	rejected := []struct {
		v  any
		to any
	}{
		{3.9, 0},
		{-1, uint(0)},
		{300, int8(0)},
		{-0.5, uint8(0)},
		{1e20, int64(0)},
		{math.NaN(), 0},
		{uint64(math.MaxUint64), int64(0)},
		{1<<53 + 1, 0.0},
		{1<<24 + 1, float32(0)},
		{1e300, float32(0)},
	}
	for _, c := range rejected {
		_, err := Coerce(c.v, reflect.TypeOf(c.to))
		var typeErr *errorx.TypeIncompatibilityError
		assert.True(t, errors.As(err, &typeErr), "%T(%v) to %T", c.v, c.v, c.to)
	}
}

func TestGetFuncName(t *testing.T) {
	assert.Contains(t, GetFuncName(TestGetFuncName), "TestGetFuncName")
	assert.Panics(t, func() { GetFuncName(1) })
}

func TestIsErrorType(t *testing.T) {
	assert.True(t, IsErrorType(TypeOf[error]()))
	assert.True(t, IsErrorType(TypeOf[*errorx.NotFoundError]()))
	assert.False(t, IsErrorType(TypeOf[string]()))
}
