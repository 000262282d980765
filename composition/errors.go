package composition

import (
	"errors"
	"fmt"
)

var (
	// ErrSkip marks a mutation that must not be applied, such as one inside
	// an atomic block.
	ErrSkip = errors.New("composition: skip mutation")

	// ErrUnknownBlock is returned when a location key names a block the
	// document does not have.
	ErrUnknownBlock = errors.New("composition: unknown block")

	// ErrUnknownLeaf is returned when a location key names a decorator or
	// leaf index outside the block tree.
	ErrUnknownLeaf = errors.New("composition: unknown leaf")
)

// InvariantError reports a violated session invariant. It is raised with
// panic: a session that resolves without an observer would otherwise stay
// stuck in composition.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("composition: %s: %s", e.Op, e.Msg)
}
