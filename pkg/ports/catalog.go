package ports

import (
	"github.com/aretw0/agrocalc/pkg/calc"
	"github.com/aretw0/agrocalc/pkg/domain"
)

// Catalog defines read access to the calculation modules.
// Implementations are immutable after construction and safe for concurrent use.
type Catalog interface {
	// Lookup returns the module with the given ID or an error wrapping
	// domain.ErrModuleNotFound.
	Lookup(id string) (*calc.Module, error)

	// List returns the modules in display order.
	List() []*calc.Module

	// Descriptors returns the catalog metadata in display order.
	Descriptors() []domain.ModuleDescriptor
}
