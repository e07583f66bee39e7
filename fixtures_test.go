package omni

import (
	"errors"
	"sync/atomic"

	"github.com/dozm/omni/errorx"
)

type (
	Greeter interface {
		Greet() string
	}

	englishGreeter struct {
		Name string
	}

	Repository struct {
		DSN string
	}

	Service struct {
		Repo *Repository
	}

	Controller struct {
		Service *Service
	}
)

func (g *englishGreeter) Greet() string {
	return "hello " + g.Name
}

// mapSource is a lookup source backed by functions.
type mapSource map[string]func() (any, error)

func (s mapSource) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s mapSource) Get(id string) (any, error) {
	f, ok := s[id]
	if !ok {
		return nil, errorx.NewNotFoundError(id)
	}
	return f()
}

func valueOf(v any) func() (any, error) {
	return func() (any, error) { return v, nil }
}

func failWith(err error) func() (any, error) {
	return func() (any, error) { return nil, err }
}

// countingSource records every Has and Get.
type countingSource struct {
	Container
	gets []string
	hass []string
}

func (s *countingSource) Has(id string) bool {
	s.hass = append(s.hass, id)
	return s.Container.Has(id)
}

func (s *countingSource) Get(id string) (any, error) {
	s.gets = append(s.gets, id)
	return s.Container.Get(id)
}

var errBoom = errors.New("boom")

// appClasses registers Repository, Service, Controller and Greeter.
// Service constructions are counted in services.
func appClasses(services *int32) *ClassRegistry {
	r := NewClassRegistry()
	RegisterClass[Repository](r, nil)
	RegisterClass[Service](r, func(repo *Repository) *Service {
		atomic.AddInt32(services, 1)
		return &Service{Repo: repo}
	})
	RegisterClass[Controller](r, func(s *Service) *Controller {
		return &Controller{Service: s}
	})
	RegisterInterface[Greeter](r)
	return r
}

func withClasses(r *ClassRegistry) func(*Options) {
	return func(o *Options) {
		o.Classes = r
	}
}
