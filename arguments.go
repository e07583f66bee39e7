package omni

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/dozm/omni/errorx"
	"github.com/dozm/omni/reflectx"
)

// ArgumentsResolver turns a signature into an ordered argument list, looking
// dependencies up in source. Parameters are processed left to right; the
// first error aborts the resolution and no partial list is returned.
type ArgumentsResolver interface {
	ResolveArguments(sig reflectx.Signature, source Container) ([]any, error)
}

// NameBasedArgumentsResolver looks each parameter up by its name.
// A parameter absent from the source takes its default value, if any.
type NameBasedArgumentsResolver struct {
	Logger zerolog.Logger
}

func NewNameBasedArgumentsResolver() *NameBasedArgumentsResolver {
	return &NameBasedArgumentsResolver{Logger: zerolog.Nop()}
}

func (r *NameBasedArgumentsResolver) ResolveArguments(sig reflectx.Signature, source Container) ([]any, error) {
	if err := checkVariadic(sig); err != nil {
		return nil, err
	}

	args := make([]any, len(sig.Params))
	for i, p := range sig.Params {
		v, err := r.resolveArgument(sig, i, p, source)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (r *NameBasedArgumentsResolver) resolveArgument(sig reflectx.Signature, i int, p reflectx.Parameter, source Container) (any, error) {
	if p.Name == "" {
		if p.HasDefault {
			return p.Default, nil
		}
		return nil, errorx.NewAutowiringError(
			"the parameter %s has no name and cannot be autowired by name", describeParameter(sig, i, p))
	}

	if p.HasDefault {
		ok, err := exists(source, p.Name)
		if err != nil {
			return nil, err
		}
		if !ok {
			r.Logger.Debug().
				Str("parameter", p.Name).
				Str("callable", sig.Name).
				Msg("using default value")
			return p.Default, nil
		}
	}

	return source.Get(p.Name)
}

// TypeBasedArgumentsResolver looks each parameter up by the type key of its
// declared type. Only single named, non built-in types can be autowired. A
// parameter with a default value takes it when the lookup fails with a
// NotFoundError or an AutowiringError.
type TypeBasedArgumentsResolver struct {
	Logger zerolog.Logger
}

func NewTypeBasedArgumentsResolver() *TypeBasedArgumentsResolver {
	return &TypeBasedArgumentsResolver{Logger: zerolog.Nop()}
}

func (r *TypeBasedArgumentsResolver) ResolveArguments(sig reflectx.Signature, source Container) ([]any, error) {
	if err := checkVariadic(sig); err != nil {
		return nil, err
	}

	args := make([]any, len(sig.Params))
	for i, p := range sig.Params {
		v, err := r.resolveArgument(sig, i, p, source)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (r *TypeBasedArgumentsResolver) resolveArgument(sig reflectx.Signature, i int, p reflectx.Parameter, source Container) (any, error) {
	v, err := r.lookup(sig, i, p, source)
	if err == nil {
		return v, nil
	}

	if p.HasDefault && (errorx.IsAutowiring(err) || errorx.IsNotFound(err)) {
		r.Logger.Debug().
			Err(err).
			Str("parameter", describeParameter(sig, i, p)).
			Msg("using default value")
		return p.Default, nil
	}
	return nil, err
}

func (r *TypeBasedArgumentsResolver) lookup(sig reflectx.Signature, i int, p reflectx.Parameter, source Container) (any, error) {
	switch p.TypeKind() {
	case reflectx.TypeKind_None:
		return nil, errorx.NewAutowiringError(
			"the parameter %s lacks a type declaration and cannot be autowired", describeParameter(sig, i, p))
	case reflectx.TypeKind_Complex:
		return nil, errorx.NewAutowiringError(
			"the parameter %s has a complex type declaration '%v', which cannot be autowired",
			describeParameter(sig, i, p), p.Type)
	}

	if p.IsBuiltin() {
		return nil, errorx.NewAutowiringError(
			"the parameter %s is of a built-in type '%v', which cannot be autowired",
			describeParameter(sig, i, p), p.Type)
	}

	return source.Get(reflectx.TypeKey(p.Type))
}

func checkVariadic(sig reflectx.Signature) error {
	for i, p := range sig.Params {
		if p.Variadic {
			return errorx.NewAutowiringError(
				"the variadic parameter %s is not supported for autowiring", describeParameter(sig, i, p))
		}
	}
	return nil
}

func describeParameter(sig reflectx.Signature, i int, p reflectx.Parameter) string {
	if p.Name == "" {
		return fmt.Sprintf("#%d in %v", i, sig.Name)
	}
	return fmt.Sprintf("#%d '%v' in %v", i, p.Name, sig.Name)
}
