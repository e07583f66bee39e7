package omni

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dozm/omni/util"
)

// Container options.
type Options struct {
	// ArgumentsResolver autowires constructor and factory parameters.
	// Defaults to a TypeBasedArgumentsResolver.
	ArgumentsResolver ArgumentsResolver
	// Classes instantiated by class entries and the dynamic container.
	// Defaults to DefaultClasses.
	Classes *ClassRegistry
	// Namespaces claimed by the dynamic container.
	Namespaces []string
	Logger     zerolog.Logger
}

// Get default container options.
func DefaultOptions() Options {
	return Options{
		ArgumentsResolver: NewTypeBasedArgumentsResolver(),
		Classes:           DefaultClasses,
		Logger:            zerolog.Nop(),
	}
}

func buildOptions(configure []func(*Options)) Options {
	options := DefaultOptions()
	for _, f := range configure {
		f(&options)
	}
	if options.ArgumentsResolver == nil {
		options.ArgumentsResolver = NewTypeBasedArgumentsResolver()
	}
	if options.Classes == nil {
		options.Classes = DefaultClasses
	}
	return options
}

// OmniContainer composes a StaticContainer and a DynamicContainer, in that
// order, behind a CompositeContainer, and owns an alias table resolved before
// the composite is consulted.
//
// The OmniContainer is the root of both sub-containers: dependencies of their
// entries are resolved through it, aliases included.
type OmniContainer struct {
	composite *CompositeContainer
	static    *StaticContainer
	dynamic   *DynamicContainer
	aliases   map[string]string
	guard     *recursionGuard
	logger    zerolog.Logger
}

// New creates an OmniContainer. The container registers itself under
// ContainerID.
func New(configure ...func(*Options)) *OmniContainer {
	options := buildOptions(configure)

	c := &OmniContainer{
		static:  NewStaticContainer(func(o *Options) { *o = options }),
		dynamic: NewDynamicContainer(func(o *Options) { *o = options }),
		aliases: make(map[string]string),
		guard:   newRecursionGuard(),
		logger:  options.Logger.With().Str("container", "omni").Logger(),
	}

	c.composite = NewCompositeContainer(c.static, c.dynamic)
	c.composite.SetRoot(c)
	c.static.SetValue(ContainerID, c)
	return c
}

// Get resolves id, following aliases first. Panics raised while resolving are
// returned as errors.
func (c *OmniContainer) Get(id string) (result any, err error) {
	defer func() {
		if p := recover(); p != nil {
			if e, ok := p.(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", p)
			}
		}
	}()

	return c.get(id)
}

func (c *OmniContainer) get(id string) (any, error) {
	target, ok := c.aliases[id]
	if !ok {
		return c.composite.Get(id)
	}

	if err := c.guard.enter(id); err != nil {
		c.logger.Warn().Str("alias", id).Msg("circular alias detected")
		return nil, err
	}
	defer c.guard.leave(id)

	return c.get(target)
}

// Has reports whether id, after following aliases, is claimed by a
// sub-container. An alias cycle is a configuration defect: Has panics with a
// CircularDependencyError, which Get turns back into an error. Use Exists to
// receive it as an error instead.
func (c *OmniContainer) Has(id string) bool {
	ok, err := c.Exists(id)
	if err != nil {
		panic(err)
	}
	return ok
}

// Exists is Has returning alias cycles as a CircularDependencyError.
func (c *OmniContainer) Exists(id string) (bool, error) {
	target, ok := c.aliases[id]
	if !ok {
		return c.composite.Exists(id)
	}

	if err := c.guard.enter(id); err != nil {
		return false, err
	}
	defer c.guard.leave(id)

	return c.Exists(target)
}

// SetRoot re-targets nested autowiring of both sub-containers to root.
func (c *OmniContainer) SetRoot(root Container) {
	c.composite.SetRoot(root)
}

// SetArgumentsResolver replaces the arguments resolver of both sub-containers.
func (c *OmniContainer) SetArgumentsResolver(r ArgumentsResolver) {
	c.static.SetArgumentsResolver(r)
	c.dynamic.SetArgumentsResolver(r)
}

func (c *OmniContainer) AddNamespace(namespace string) {
	c.dynamic.AddNamespace(namespace)
}

func (c *OmniContainer) SetValue(id string, value any) {
	c.static.SetValue(id, value)
}

func (c *OmniContainer) SetValues(values map[string]any) {
	c.static.SetValues(values)
}

func (c *OmniContainer) SetFactory(id string, fn any, args ...Arg) {
	c.static.SetFactory(id, fn, args...)
}

func (c *OmniContainer) SetSingletonFactory(id string, fn any, args ...Arg) {
	c.static.SetSingletonFactory(id, fn, args...)
}

func (c *OmniContainer) SetClass(id string, className string) {
	c.static.SetClass(id, className)
}

func (c *OmniContainer) SetSingletonClass(id string, className string) {
	c.static.SetSingletonClass(id, className)
}

// SetAlias makes id resolve as targetID. Aliases live in their own table and
// take precedence over every sub-container.
func (c *OmniContainer) SetAlias(id string, targetID string) {
	c.aliases[id] = targetID
}

// Aliases returns a copy of the alias table.
func (c *OmniContainer) Aliases() map[string]string {
	aliases := make(map[string]string, len(c.aliases))
	for k, v := range c.aliases {
		aliases[k] = v
	}
	return aliases
}

// AliasIDs returns the alias identifiers in ascending order.
func (c *OmniContainer) AliasIDs() []string {
	return util.SortedKeys(c.aliases)
}

func (c *OmniContainer) Static() *StaticContainer {
	return c.static
}

func (c *OmniContainer) Dynamic() *DynamicContainer {
	return c.dynamic
}
