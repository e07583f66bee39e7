package omni

import (
	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/util"
)

// CompositeContainer chains lookup sources. The first source claiming an
// identifier answers for it, even when its resolution fails later on.
type CompositeContainer struct {
	containers []Container
}

func NewCompositeContainer(containers ...Container) *CompositeContainer {
	c := &CompositeContainer{}
	for _, container := range containers {
		c.Add(container)
	}
	return c
}

func (c *CompositeContainer) Add(container Container) {
	c.containers = append(c.containers, container)
}

func (c *CompositeContainer) Containers() []Container {
	return util.ClipSlice(c.containers)
}

// SetRoot forwards root to every cascading constituent.
func (c *CompositeContainer) SetRoot(root Container) {
	for _, container := range c.containers {
		if cascading, ok := container.(Cascading); ok {
			cascading.SetRoot(root)
		}
	}
}

// Get resolves id from the first constituent claiming it. A constituent
// failing its existence check, like an OmniContainer on an alias cycle, ends
// the lookup with that error.
func (c *CompositeContainer) Get(id string) (any, error) {
	for _, container := range c.containers {
		ok, err := exists(container, id)
		if err != nil {
			return nil, err
		}
		if ok {
			return container.Get(id)
		}
	}
	return nil, errorx.NewNotFoundError(id)
}

// Has reports whether any constituent claims id. It panics when a
// constituent does, see OmniContainer.Has; use Exists to get an error.
func (c *CompositeContainer) Has(id string) bool {
	ok, err := c.Exists(id)
	if err != nil {
		panic(err)
	}
	return ok
}

// Exists is Has returning failed existence checks as errors.
func (c *CompositeContainer) Exists(id string) (bool, error) {
	for _, container := range c.containers {
		ok, err := exists(container, id)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
