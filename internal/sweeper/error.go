package sweeper

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid board configuration")
	ErrAlreadySeeded = errors.New("hazards already seeded")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

// OutOfBoundsError is raised (via panic) when a caller addresses a cell
// outside of the grid.
type OutOfBoundsError struct {
	Row, Col, Size int
}

// [OutOfBoundsError] implements [error]
func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell %d:%d out of bounds for %dx%d grid",
		e.Row, e.Col, e.Size, e.Size)
}
