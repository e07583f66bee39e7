package errorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// NotFoundError reports an identifier the lookup source knows nothing about.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("NotFoundError: the entry '%v' was not found in the container", e.ID)
}

func NewNotFoundError(id string) *NotFoundError {
	return &NotFoundError{ID: id}
}

// AutowiringError reports a parameter that cannot be mapped to a dependency.
type AutowiringError struct {
	Message string
}

func (e *AutowiringError) Error() string {
	return fmt.Sprintf("AutowiringError: %v", e.Message)
}

func NewAutowiringError(format string, args ...any) *AutowiringError {
	return &AutowiringError{Message: fmt.Sprintf(format, args...)}
}

type CircularDependencyError struct {
	ID string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("CircularDependencyError: circular dependency detected for '%v'", e.ID)
}

// InstantiationError reports a class that does not exist or is abstract.
type InstantiationError struct {
	Class   string
	Message string
}

func (e *InstantiationError) Error() string {
	return fmt.Sprintf("InstantiationError: cannot instantiate '%v': %v", e.Class, e.Message)
}

type FuncSignatureError struct {
	Message string
}

func (e *FuncSignatureError) Error() string {
	return fmt.Sprintf("FuncSignatureError: %v", e.Message)
}

type InvalidEntryError struct {
	ID string
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("InvalidEntryError: '%v'", e.ID)
}

type TypeIncompatibilityError struct {
	To   reflect.Type
	From reflect.Type
}

func (e *TypeIncompatibilityError) Error() string {
	return fmt.Sprintf("the value of type '%v' can not assignable to type '%v'", e.From, e.To)
}

type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Add(err error) {
	e.Errors = append(e.Errors, err)
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	b.WriteString("AggregateError: \n")
	for _, e := range e.Errors {
		b.WriteString(e.Error())
		b.WriteString("\n")
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsAutowiring(err error) bool {
	var target *AutowiringError
	return errors.As(err, &target)
}

func IsCircularDependency(err error) bool {
	var target *CircularDependencyError
	return errors.As(err, &target)
}

func IsInstantiation(err error) bool {
	var target *InstantiationError
	return errors.As(err, &target)
}
