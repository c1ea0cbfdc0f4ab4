package registry

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/calculators"
	"github.com/aretw0/agrocalc/pkg/domain"
	"github.com/aretw0/agrocalc/pkg/schema"
)

// Registry is the ordered, read-only module catalog.
// It is built once and safe for concurrent use; there is no dynamic registration.
type Registry struct {
	modules []*calc.Module
	index   map[string]int
}

// New builds a registry preserving the given order.
// It fails on duplicate IDs or on any module whose definition is inconsistent.
func New(modules ...*calc.Module) (*Registry, error) {
	r := &Registry{
		modules: make([]*calc.Module, 0, len(modules)),
		index:   make(map[string]int, len(modules)),
	}

	var errs []error
	for _, m := range modules {
		if m == nil {
			errs = append(errs, &schema.ValidationError{Key: "module", Reason: "nil module"})
			continue
		}
		if err := m.Check(); err != nil {
			errs = append(errs, schemaErrors(err)...)
			continue
		}
		if _, dup := r.index[m.ID]; dup {
			errs = append(errs, &schema.ValidationError{Key: m.ID, Reason: "duplicate module id"})
			continue
		}
		r.index[m.ID] = len(r.modules)
		r.modules = append(r.modules, m)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", &schema.AggregateError{Errors: errs})
	}
	return r, nil
}

func schemaErrors(err error) []error {
	if errs := schema.ValidationErrors(err); errs != nil {
		return errs
	}
	return []error{err}
}

// Default builds the registry holding the full calculator catalog.
func Default() *Registry {
	r, err := New(calculators.All()...)
	if err != nil {
		// The built-in catalog is covered by tests; failing here is a programming error.
		panic(err)
	}
	return r
}

// Lookup returns the module with the given ID.
func (r *Registry) Lookup(id string) (*calc.Module, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, id)
	}
	return r.modules[i], nil
}

// Has reports whether id names a module.
func (r *Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// List returns the modules in display order.
func (r *Registry) List() []*calc.Module {
	out := make([]*calc.Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Descriptors returns the catalog metadata in display order.
func (r *Registry) Descriptors() []domain.ModuleDescriptor {
	out := make([]domain.ModuleDescriptor, len(r.modules))
	for i, m := range r.modules {
		out[i] = m.ModuleDescriptor
	}
	return out
}

// Len returns the number of modules.
func (r *Registry) Len() int {
	return len(r.modules)
}
