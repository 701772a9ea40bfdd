package sim

import (
	"errors"
	"fmt"
)

// ErrNilID reports an entity carrying the reserved all-zero identifier.
var ErrNilID = errors.New("entity has nil id")

// BadReferenceError reports a reference to an entity that is not in the
// world. Kind names the referenced entity kind ("player" or "team").
type BadReferenceError struct {
	Kind string
	ID   ID
}

func (e *BadReferenceError) Error() string {
	return fmt.Sprintf("dangling %s reference %s", e.Kind, e.ID)
}

// DuplicatePlayerError reports a player appearing more than once across a
// team's lineup, rotation and shadows.
type DuplicatePlayerError struct {
	Player PlayerID
}

func (e *DuplicatePlayerError) Error() string {
	return fmt.Sprintf("player %s appears more than once on the roster", e.Player)
}

// checker is implemented by every entity that can be validated against the
// world it is about to join. problems returns every violation found, not
// just the first.
type checker interface {
	problems(w *World) []error
}
