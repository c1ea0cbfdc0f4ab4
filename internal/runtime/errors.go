package runtime

import (
	"fmt"

	"github.com/aretw0/agrocalc/pkg/domain"
)

// UnknownEventError is returned for events the reducer does not handle.
type UnknownEventError struct {
	Type domain.EventType
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event type: %q", e.Type)
}
