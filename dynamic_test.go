package omni

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dozm/omni/errorx"
)

const testNamespace = "github.com/dozm/omni"

func TestDynamicContainer_AddNamespace(t *testing.T) {
	c := NewDynamicContainer()
	c.AddNamespace("example.com/app")
	c.AddNamespace("example.com/lib/")
	c.AddNamespace("example.com/pkg.")

	assert.Equal(t, []string{"example.com/app/", "example.com/lib/", "example.com/pkg/"}, c.Namespaces())
}

func TestDynamicContainer_Has(t *testing.T) {
	classes := NewClassRegistry()
	for _, name := range []string{
		"example.com/app.Thing",
		"example.com/app/http.Handler",
		"example.com/application.Other",
		"example.com/app.v2.Thing",
		"example.com/app.v2/http.Handler",
	} {
		classes.Add(&Class{Name: name, Type: reflect.TypeOf(Repository{})})
	}

	c := NewDynamicContainer(withClasses(classes), func(o *Options) {
		o.Namespaces = []string{"example.com/app"}
	})

	assert.True(t, c.Has("example.com/app.Thing"))
	assert.True(t, c.Has("example.com/app/http.Handler"))
	assert.False(t, c.Has("example.com/application.Other"))
	assert.False(t, c.Has("example.com/app.Missing"))
	assert.False(t, c.Has("example.com/app.v2.Thing"))
	assert.False(t, c.Has("example.com/app.v2/http.Handler"))
}

func TestDynamicContainer_NotFound(t *testing.T) {
	var services int32
	c := NewDynamicContainer(withClasses(appClasses(&services)))

	_, err := c.Get(ClassName[Repository]())
	assert.True(t, errorx.IsNotFound(err))

	c.AddNamespace(testNamespace)
	_, err = c.Get(testNamespace + ".Missing")
	assert.True(t, errorx.IsNotFound(err))
}

func TestDynamicContainer_Memoizes(t *testing.T) {
	var services int32
	c := NewDynamicContainer(withClasses(appClasses(&services)))
	c.AddNamespace(testNamespace)

	s1 := Get[*Service](c, ClassName[Service]())
	s2 := Get[*Service](c, ClassName[Service]())
	c1 := Get[*Controller](c, ClassName[Controller]())

	assert.Same(t, s1, s2)
	assert.Same(t, s1, c1.Service)
	assert.Equal(t, int32(1), services)
}

func TestDynamicContainer_Abstract(t *testing.T) {
	var services int32
	c := NewDynamicContainer(withClasses(appClasses(&services)))
	c.AddNamespace(testNamespace)

	require.True(t, c.Has(ClassName[Greeter]()))
	_, err := c.Get(ClassName[Greeter]())
	assert.True(t, errorx.IsInstantiation(err))
}

type (
	chicken struct{ Egg *egg }
	egg     struct{ Chicken *chicken }
)

func TestDynamicContainer_Circular(t *testing.T) {
	classes := NewClassRegistry()
	RegisterClass[chicken](classes, func(e *egg) *chicken { return &chicken{Egg: e} })
	RegisterClass[egg](classes, func(c *chicken) *egg { return &egg{Chicken: c} })

	c := NewDynamicContainer(withClasses(classes))
	c.AddNamespace(testNamespace)

	_, err := c.Get(ClassName[chicken]())
	assert.True(t, errorx.IsCircularDependency(err))
	assert.Zero(t, c.guard.len())
	assert.Empty(t, c.items)
}

func TestDynamicContainer_ArgumentsFromRoot(t *testing.T) {
	var services int32
	c := NewDynamicContainer(withClasses(appClasses(&services)))
	c.AddNamespace(testNamespace)

	repo := &Repository{DSN: "root"}
	root := NewStaticContainer()
	root.SetValue(ClassName[Repository](), repo)
	c.SetRoot(root)

	s := Get[*Service](c, ClassName[Service]())
	assert.Same(t, repo, s.Repo)
}

func TestDynamicContainer_FailureNotMemoized(t *testing.T) {
	var services int32
	c := NewDynamicContainer(withClasses(appClasses(&services)))
	c.AddNamespace(testNamespace)

	root := NewStaticContainer()
	root.SetFactory(ClassName[Repository](), func() (*Repository, error) { return nil, errBoom })
	c.SetRoot(root)

	_, err := c.Get(ClassName[Service]())
	require.Same(t, errBoom, err)

	root.SetValue(ClassName[Repository](), &Repository{})
	_, err = c.Get(ClassName[Service]())
	assert.NoError(t, err)
}
