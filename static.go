package omni

import (
	"github.com/rs/zerolog"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/util"
)

// StaticContainer is an explicit registry of identifiers to entries.
// Registration is not safe for concurrent use and must not happen while a
// resolution is in flight.
type StaticContainer struct {
	entries  map[string]Entry
	resolver *EntryResolver
	guard    *recursionGuard
	root     Container
	logger   zerolog.Logger
}

func NewStaticContainer(configure ...func(*Options)) *StaticContainer {
	options := buildOptions(configure)
	return &StaticContainer{
		entries:  make(map[string]Entry),
		resolver: newEntryResolver(options),
		guard:    newRecursionGuard(),
		logger:   options.Logger.With().Str("container", "static").Logger(),
	}
}

// Get resolves the entry registered under id. Dependencies of the entry are
// resolved through the root container.
func (c *StaticContainer) Get(id string) (any, error) {
	entry, ok := c.entries[id]
	if !ok {
		return nil, errorx.NewNotFoundError(id)
	}

	if err := c.guard.enter(id); err != nil {
		c.logger.Warn().Str("id", id).Msg("circular dependency detected")
		return nil, err
	}
	defer c.guard.leave(id)

	c.logger.Debug().Str("id", id).Stringer("kind", entry.Kind()).Msg("resolving entry")
	return c.resolver.Resolve(entry, c.Root())
}

// Has reports whether an entry is registered under id. The entry may still
// fail to resolve.
func (c *StaticContainer) Has(id string) bool {
	_, ok := c.entries[id]
	return ok
}

func (c *StaticContainer) SetRoot(root Container) {
	c.root = root
}

func (c *StaticContainer) Root() Container {
	if c.root == nil {
		return c
	}
	return c.root
}

func (c *StaticContainer) SetArgumentsResolver(r ArgumentsResolver) {
	c.resolver.Arguments = r
}

// Entry returns the entry registered under id.
func (c *StaticContainer) Entry(id string) (Entry, bool) {
	entry, ok := c.entries[id]
	return entry, ok
}

// Entries returns the registered identifiers in ascending order.
func (c *StaticContainer) Entries() []string {
	return util.SortedKeys(c.entries)
}

// Set registers entry under id, replacing any previous registration.
func (c *StaticContainer) Set(id string, entry Entry) {
	c.entries[id] = entry
}

func (c *StaticContainer) SetValue(id string, value any) {
	c.Set(id, Value(value))
}

// SetValues registers every pair of values as a value entry.
func (c *StaticContainer) SetValues(values map[string]any) {
	for id, v := range values {
		c.SetValue(id, v)
	}
}

// SetFactory registers fn, described by args, to be invoked on every Get.
// fn may also be a *Callable.
func (c *StaticContainer) SetFactory(id string, fn any, args ...Arg) {
	c.Set(id, Factory(fn, args...))
}

// SetSingletonFactory registers fn, described by args, to be invoked once.
func (c *StaticContainer) SetSingletonFactory(id string, fn any, args ...Arg) {
	c.Set(id, Singleton(Factory(fn, args...)))
}

// SetClass registers a new instance of className on every Get.
func (c *StaticContainer) SetClass(id string, className string) {
	c.Set(id, ClassOf(className))
}

func (c *StaticContainer) SetSingletonClass(id string, className string) {
	c.Set(id, Singleton(ClassOf(className)))
}

func (c *StaticContainer) SetAlias(id string, targetID string) {
	c.Set(id, Alias(targetID))
}
