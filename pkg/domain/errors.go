package domain

import "errors"

// ErrModuleNotFound is returned when an identifier is not in the catalog.
var ErrModuleNotFound = errors.New("module not found")

// ErrStrategyNotFound is returned when a module does not offer the requested strategy.
var ErrStrategyNotFound = errors.New("strategy not found")

// ErrFieldNotFound is returned when an edit targets a field the active strategy does not declare.
var ErrFieldNotFound = errors.New("field not found")

// ErrNoActiveModule is returned when a module-scoped event arrives with nothing selected.
var ErrNoActiveModule = errors.New("no active module")
