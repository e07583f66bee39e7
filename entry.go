package omni

// EntryKind tags the variants of Entry.
type EntryKind byte

const (
	EntryKind_Value EntryKind = iota
	EntryKind_Alias
	EntryKind_Class
	EntryKind_Factory
	EntryKind_Singleton
)

func (k EntryKind) String() string {
	switch k {
	case EntryKind_Value:
		return "value"
	case EntryKind_Alias:
		return "alias"
	case EntryKind_Class:
		return "class"
	case EntryKind_Factory:
		return "factory"
	case EntryKind_Singleton:
		return "singleton"
	default:
		return "unknown"
	}
}

// Entry is a unit of container configuration that knows how to produce a
// value on demand. The set of variants is closed: *ValueEntry, *AliasEntry,
// *ClassEntry, *FactoryEntry and *SingletonEntry.
//
// Entries never refer to the container that owns them; the lookup source is
// passed in at resolution time, so an entry can be shared between containers.
type Entry interface {
	Kind() EntryKind
	entry()
}

// ValueEntry returns its payload as is.
type ValueEntry struct {
	value any
}

func (e *ValueEntry) Kind() EntryKind { return EntryKind_Value }
func (e *ValueEntry) entry()          {}

func (e *ValueEntry) Value() any {
	return e.value
}

func Value(v any) *ValueEntry {
	return &ValueEntry{value: v}
}

// AliasEntry forwards to another identifier of the same lookup source.
type AliasEntry struct {
	TargetID string
}

func (e *AliasEntry) Kind() EntryKind { return EntryKind_Alias }
func (e *AliasEntry) entry()          {}

func Alias(targetID string) *AliasEntry {
	return &AliasEntry{TargetID: targetID}
}

// ClassEntry builds a new instance of a registered class on every call.
type ClassEntry struct {
	ClassName string
}

func (e *ClassEntry) Kind() EntryKind { return EntryKind_Class }
func (e *ClassEntry) entry()          {}

func ClassOf(className string) *ClassEntry {
	return &ClassEntry{ClassName: className}
}

// FactoryEntry invokes its factory on every call.
type FactoryEntry struct {
	Factory *Callable
}

func (e *FactoryEntry) Kind() EntryKind { return EntryKind_Factory }
func (e *FactoryEntry) entry()          {}

// Factory describes fn with args, see Func. fn may also be a *Callable.
func Factory(fn any, args ...Arg) *FactoryEntry {
	return &FactoryEntry{Factory: mustCallable(fn, args)}
}

// SingletonEntry computes the value of Inner once and caches it.
// A failed computation is not cached and runs again on the next call.
type SingletonEntry struct {
	Inner Entry

	value     any
	cached    bool
	computing bool
}

func (e *SingletonEntry) Kind() EntryKind { return EntryKind_Singleton }
func (e *SingletonEntry) entry()          {}

// Cached reports whether the value has been computed.
func (e *SingletonEntry) Cached() bool {
	return e.cached
}

func Singleton(inner Entry) *SingletonEntry {
	return &SingletonEntry{Inner: inner}
}
