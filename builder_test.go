package omni

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_TypeKeyedRegistrations(t *testing.T) {
	var services int32
	c := New(withClasses(appClasses(&services)))

	AddValue(c, &Repository{DSN: "mem://"})
	AddSingletonClass[Service](c)
	AddClass[Controller](c)
	AddFactory[*englishGreeter](c, func(s *Service) *englishGreeter { return &englishGreeter{Name: s.Repo.DSN} })
	Bind[Greeter, englishGreeter](c)

	ctrl := GetByType[*Controller](c)
	assert.Equal(t, "mem://", ctrl.Service.Repo.DSN)
	assert.Same(t, ctrl.Service, GetByType[*Controller](c).Service)
	assert.Equal(t, "hello mem://", GetByType[Greeter](c).Greet())
	assert.Equal(t, int32(1), services)
}

func TestBuilder_SingletonFactory(t *testing.T) {
	c := NewStaticContainer()
	calls := 0
	AddSingletonFactory[*Repository](c, func() *Repository {
		calls++
		return &Repository{}
	})

	r1, err := TryGetByType[*Repository](c)
	assert.NoError(t, err)
	assert.Same(t, r1, GetByType[*Repository](c))
	assert.Equal(t, 1, calls)
}

func TestTryGet_TypeMismatch(t *testing.T) {
	c := NewStaticContainer()
	c.SetValue("x", "string")
	c.SetValue("nil", nil)

	_, err := TryGet[int](c, "x")
	assert.Error(t, err)

	v, err := TryGet[*Repository](c, "nil")
	assert.NoError(t, err)
	assert.Nil(t, v)
}

func TestInvoke(t *testing.T) {
	c := New()
	c.SetValue("dsn", "mem://")

	v, err := Invoke(c, NewNameBasedArgumentsResolver(), func(dsn string) *Repository {
		return &Repository{DSN: dsn}
	}, Named("dsn"))
	assert.NoError(t, err)
	assert.Equal(t, "mem://", v.(*Repository).DSN)

	_, err = Invoke(c, NewNameBasedArgumentsResolver(), 42)
	assert.Error(t, err)
}
