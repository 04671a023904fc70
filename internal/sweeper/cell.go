package sweeper

import (
	"fmt"
	"strconv"
)

type cellKind int8

const (
	hidden cellKind = iota
	revealed
	detonated
)

// Cell is the state of one grid position. The zero value is Hidden(false).
type Cell struct {
	kind   cellKind
	hazard bool
	count  int8
}

// Hidden is a cell that was not revealed yet.
func Hidden(hasHazard bool) Cell {
	return Cell{kind: hidden, hazard: hasHazard}
}

// Revealed is a safe open cell bordering n hazards.
func Revealed(n int) Cell {
	if n < 0 || n > 8 {
		panic(AssertionError{fmt.Sprintf("neighbor count out of range: %d", n)})
	}
	return Cell{kind: revealed, count: int8(n)}
}

// Detonated is the hazard the player clicked on.
func Detonated() Cell {
	return Cell{kind: detonated, hazard: true}
}

func (c Cell) IsHidden() bool    { return c.kind == hidden }
func (c Cell) IsRevealed() bool  { return c.kind == revealed }
func (c Cell) IsDetonated() bool { return c.kind == detonated }

// HasHazard reports whether a virus sits in a still hidden cell.
func (c Cell) HasHazard() bool { return c.kind == hidden && c.hazard }

// Count is the hazard neighbor count of a revealed cell, 0 otherwise.
func (c Cell) Count() int { return int(c.count) }

func (c Cell) String() string {
	switch c.kind {
	case hidden:
		if c.hazard {
			return "Hidden(true)"
		}
		return "Hidden(false)"
	case revealed:
		return "Revealed(" + strconv.Itoa(int(c.count)) + ")"
	default:
		return "Detonated"
	}
}
