package omni

import (
	"errors"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/reflectx"
)

// entryValidator checks entries without resolving them.
type entryValidator struct {
	classes *ClassRegistry
	errs    *errorx.AggregateError
}

func (v *entryValidator) visitEntry(id string, entry Entry) {
	switch entry.Kind() {
	case EntryKind_Class:
		v.visitClass(id, entry.(*ClassEntry))
	case EntryKind_Factory:
		v.visitSignature(id, entry.(*FactoryEntry).Factory.Signature)
	case EntryKind_Singleton:
		v.visitEntry(id, entry.(*SingletonEntry).Inner)
	case EntryKind_Value, EntryKind_Alias:
	default:
		v.errs.Add(&errorx.InvalidEntryError{ID: id})
	}
}

func (v *entryValidator) visitClass(id string, entry *ClassEntry) {
	class, ok := v.classes.Lookup(entry.ClassName)
	if !ok {
		v.errs.Add(&errorx.InstantiationError{Class: entry.ClassName, Message: "the class does not exist"})
		return
	}
	if class.Abstract {
		v.errs.Add(&errorx.InstantiationError{Class: entry.ClassName, Message: "the class is not instantiable"})
		return
	}
	v.visitSignature(id, class.Signature())
}

func (v *entryValidator) visitSignature(id string, sig reflectx.Signature) {
	if err := checkVariadic(sig); err != nil {
		v.errs.Add(err)
	}
}

func (v *entryValidator) result() error {
	if len(v.errs.Errors) == 0 {
		return nil
	}
	return v.errs
}

// Validate reports, without resolving anything, every class entry naming a
// missing or abstract class and every factory or constructor that cannot be
// autowired because it is variadic. The returned error is an
// *errorx.AggregateError.
func (c *StaticContainer) Validate() error {
	v := &entryValidator{classes: c.resolver.Classes, errs: &errorx.AggregateError{}}
	for _, id := range c.Entries() {
		v.visitEntry(id, c.entries[id])
	}
	return v.result()
}

// Validate validates the static container and reports alias cycles.
func (c *OmniContainer) Validate() error {
	errs := &errorx.AggregateError{}

	var agg *errorx.AggregateError
	if err := c.static.Validate(); errors.As(err, &agg) {
		errs.Errors = append(errs.Errors, agg.Errors...)
	}

	for _, id := range c.AliasIDs() {
		if err := c.checkAlias(id); err != nil {
			errs.Add(err)
		}
	}

	if len(errs.Errors) == 0 {
		return nil
	}
	return errs
}

func (c *OmniContainer) checkAlias(id string) error {
	seen := map[string]struct{}{id: {}}
	for target, ok := c.aliases[id]; ok; target, ok = c.aliases[target] {
		if _, cycle := seen[target]; cycle {
			return &errorx.CircularDependencyError{ID: id}
		}
		seen[target] = struct{}{}
	}
	return nil
}
