package omni

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dozm/omni/errorx"
)

// EntryResolver computes the value of entries. It carries what entries need
// besides the lookup source: the arguments resolver, the class registry used
// by class entries and a logger.
type EntryResolver struct {
	Arguments ArgumentsResolver
	Classes   *ClassRegistry
	Logger    zerolog.Logger
}

func newEntryResolver(options Options) *EntryResolver {
	return &EntryResolver{
		Arguments: options.ArgumentsResolver,
		Classes:   options.Classes,
		Logger:    options.Logger,
	}
}

// Resolve returns the value of entry, resolving its dependencies from source.
// Errors of nested resolutions are returned unmodified.
func (r *EntryResolver) Resolve(entry Entry, source Container) (any, error) {
	switch entry.Kind() {
	case EntryKind_Value:
		return r.visitValue(entry.(*ValueEntry))
	case EntryKind_Alias:
		return r.visitAlias(entry.(*AliasEntry), source)
	case EntryKind_Class:
		return r.visitClass(entry.(*ClassEntry), source)
	case EntryKind_Factory:
		return r.visitFactory(entry.(*FactoryEntry), source)
	case EntryKind_Singleton:
		return r.visitSingleton(entry.(*SingletonEntry), source)
	default:
		return nil, &errorx.InvalidEntryError{ID: fmt.Sprintf("%T", entry)}
	}
}

func (r *EntryResolver) visitValue(entry *ValueEntry) (any, error) {
	return entry.Value(), nil
}

func (r *EntryResolver) visitAlias(entry *AliasEntry, source Container) (any, error) {
	return source.Get(entry.TargetID)
}

func (r *EntryResolver) visitClass(entry *ClassEntry, source Container) (any, error) {
	class, err := r.lookupClass(entry.ClassName)
	if err != nil {
		return nil, err
	}
	return r.instantiate(class, source)
}

func (r *EntryResolver) visitFactory(entry *FactoryEntry, source Container) (any, error) {
	args, err := r.Arguments.ResolveArguments(entry.Factory.Signature, source)
	if err != nil {
		return nil, err
	}
	return entry.Factory.Call(args)
}

func (r *EntryResolver) visitSingleton(entry *SingletonEntry, source Container) (any, error) {
	if entry.cached {
		return entry.value, nil
	}

	if entry.computing {
		return nil, &errorx.CircularDependencyError{ID: describeEntry(entry.Inner)}
	}
	entry.computing = true
	defer func() { entry.computing = false }()

	v, err := r.Resolve(entry.Inner, source)
	if err != nil {
		return nil, err
	}

	entry.value = v
	entry.cached = true
	r.Logger.Debug().
		Str("entry", describeEntry(entry.Inner)).
		Msg("singleton cached")
	return v, nil
}

// lookupClass finds a class that can be instantiated.
func (r *EntryResolver) lookupClass(name string) (*Class, error) {
	class, ok := r.Classes.Lookup(name)
	if !ok {
		return nil, &errorx.InstantiationError{Class: name, Message: "the class does not exist"}
	}
	if class.Abstract {
		return nil, &errorx.InstantiationError{Class: name, Message: "the class is not instantiable"}
	}
	return class, nil
}

func (r *EntryResolver) instantiate(class *Class, source Container) (any, error) {
	args, err := r.Arguments.ResolveArguments(class.Signature(), source)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug().
		Str("class", class.Name).
		Int("arguments", len(args)).
		Msg("instantiating class")
	return class.New(args)
}

func describeEntry(entry Entry) string {
	switch e := entry.(type) {
	case *ValueEntry:
		return fmt.Sprintf("value %T", e.Value())
	case *AliasEntry:
		return "alias of " + e.TargetID
	case *ClassEntry:
		return "class " + e.ClassName
	case *FactoryEntry:
		return "factory " + e.Factory.Signature.Name
	case *SingletonEntry:
		return "singleton " + describeEntry(e.Inner)
	default:
		return fmt.Sprintf("%T", entry)
	}
}

// ResolveEntry returns the value of entry, resolving its dependencies from
// source with the arguments resolver r and the default class registry.
func ResolveEntry(entry Entry, source Container, r ArgumentsResolver) (any, error) {
	resolver := &EntryResolver{Arguments: r, Classes: DefaultClasses, Logger: zerolog.Nop()}
	return resolver.Resolve(entry, source)
}
