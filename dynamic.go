package omni

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/util"
)

// DynamicContainer treats any identifier inside a registered namespace as the
// name of a class to instantiate. Instances are memoized: every class is
// built at most once per container.
//
// A namespace is a package path. It claims the classes of that package and of
// every package below it.
type DynamicContainer struct {
	namespaces []string
	items      map[string]any
	arguments  ArgumentsResolver
	classes    *ClassRegistry
	guard      *recursionGuard
	root       Container
	logger     zerolog.Logger
}

func NewDynamicContainer(configure ...func(*Options)) *DynamicContainer {
	options := buildOptions(configure)
	c := &DynamicContainer{
		items:     make(map[string]any),
		arguments: options.ArgumentsResolver,
		classes:   options.Classes,
		guard:     newRecursionGuard(),
		logger:    options.Logger.With().Str("container", "dynamic").Logger(),
	}
	for _, ns := range options.Namespaces {
		c.AddNamespace(ns)
	}
	return c
}

// AddNamespace registers a package path. The stored form always ends with
// the separator "/".
func (c *DynamicContainer) AddNamespace(namespace string) {
	namespace = strings.TrimRight(namespace, "./")
	c.namespaces = append(c.namespaces, namespace+"/")
}

func (c *DynamicContainer) Namespaces() []string {
	return util.ClipSlice(c.namespaces)
}

func (c *DynamicContainer) Get(id string) (any, error) {
	if !c.Has(id) {
		return nil, errorx.NewNotFoundError(id)
	}

	if item, ok := c.items[id]; ok {
		return item, nil
	}

	if err := c.guard.enter(id); err != nil {
		c.logger.Warn().Str("id", id).Msg("circular dependency detected")
		return nil, err
	}
	defer c.guard.leave(id)

	class, _ := c.classes.Lookup(id)
	if class.Abstract {
		return nil, &errorx.InstantiationError{Class: id, Message: "the class is not instantiable"}
	}

	args, err := c.arguments.ResolveArguments(class.Signature(), c.Root())
	if err != nil {
		return nil, err
	}

	item, err := class.New(args)
	if err != nil {
		return nil, err
	}

	c.items[id] = item
	c.logger.Debug().Str("id", id).Msg("instance memoized")
	return item, nil
}

// Has reports whether id was already instantiated, or names a registered
// class inside one of the namespaces.
func (c *DynamicContainer) Has(id string) bool {
	if _, ok := c.items[id]; ok {
		return true
	}
	if !c.matchNamespace(id) {
		return false
	}
	return c.classes.Exists(id)
}

func (c *DynamicContainer) SetRoot(root Container) {
	c.root = root
}

func (c *DynamicContainer) Root() Container {
	if c.root == nil {
		return c
	}
	return c.root
}

func (c *DynamicContainer) SetArgumentsResolver(r ArgumentsResolver) {
	c.arguments = r
}

func (c *DynamicContainer) matchNamespace(className string) bool {
	for _, ns := range c.namespaces {
		if strings.HasPrefix(className, ns) {
			return true
		}
		// types declared directly in the package: the rest is a bare type name
		if name, ok := strings.CutPrefix(className, strings.TrimSuffix(ns, "/")+"."); ok &&
			name != "" && !strings.ContainsAny(name, "./") {
			return true
		}
	}
	return false
}
