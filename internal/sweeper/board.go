package sweeper

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

const (
	GridSize = 16
	Viruses  = 30
)

type Params struct {
	Size, Hazards int
}

func DefaultParams() Params {
	return Params{Size: GridSize, Hazards: Viruses}
}

// Eligible is the number of cells that may hold a hazard when the first
// click leaves the largest possible safe block (an interior cell and its
// eight neighbors).
func (p Params) Eligible() int {
	block := min(p.Size, 3)
	return p.Size*p.Size - block*block
}

func (p Params) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("%w: grid size %d", ErrInvalidConfig, p.Size)
	}
	if p.Hazards < 0 {
		return fmt.Errorf("%w: negative hazard count %d", ErrInvalidConfig, p.Hazards)
	}
	if p.Hazards >= p.Eligible() {
		return fmt.Errorf(
			"%w: %d hazards do not fit into %d eligible cells of a %dx%d grid",
			ErrInvalidConfig, p.Hazards, p.Eligible(), p.Size, p.Size,
		)
	}
	return nil
}

type Point struct {
	Row, Col int
}

// Board is a square grid of cells stored row-major.
type Board struct {
	size    int
	hazards int
	seeded  bool
	cells   []Cell
}

func NewBoard(p Params) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		size:    p.Size,
		hazards: p.Hazards,
		cells:   make([]Cell, p.Size*p.Size),
	}
	return b, nil
}

func (b *Board) Size() int    { return b.size }
func (b *Board) Hazards() int { return b.hazards }
func (b *Board) Seeded() bool { return b.seeded }

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.size && 0 <= col && col < b.size
}

func (b *Board) index(row, col int) int {
	if !b.InBounds(row, col) {
		panic(OutOfBoundsError{Row: row, Col: col, Size: b.size})
	}
	return row*b.size + col
}

// panics [OutOfBoundsError]
func (b *Board) Get(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

// panics [OutOfBoundsError]
func (b *Board) Set(row, col int, c Cell) {
	b.cells[b.index(row, col)] = c
}

// Neighbors returns the up to eight cells at Chebyshev distance 1, clipped
// to the grid edges (no wraparound).
func (b *Board) Neighbors(row, col int) []Point {
	points := make([]Point, 0, 8)
	for y := max(0, row-1); y <= min(row+1, b.size-1); y++ {
		for x := max(0, col-1); x <= min(col+1, b.size-1); x++ {
			if y != row || x != col {
				points = append(points, Point{y, x})
			}
		}
	}
	return points
}

// Count returns how many cells satisfy pred.
func (b *Board) Count(pred func(Cell) bool) (n int) {
	for _, c := range b.cells {
		if pred(c) {
			n++
		}
	}
	return
}

func (b *Board) hazardNeighbors(row, col int) (n int) {
	for _, p := range b.Neighbors(row, col) {
		if b.Get(p.Row, p.Col).HasHazard() {
			n++
		}
	}
	return
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// SeedHazards places exactly [Board.Hazards] viruses among the hidden safe
// cells, none of which is at excludeRow:excludeCol or next to it. Coordinates
// are drawn uniformly and rejected until enough placements succeed.
func (b *Board) SeedHazards(excludeRow, excludeCol int, r *rand.Rand) error {
	if b.seeded {
		return ErrAlreadySeeded
	}
	b.index(excludeRow, excludeCol)

	eligible := 0
	for row := range b.size {
		for col := range b.size {
			if absDiff(row, excludeRow) > 1 || absDiff(col, excludeCol) > 1 {
				if b.Get(row, col) == Hidden(false) {
					eligible++
				}
			}
		}
	}
	if b.hazards > eligible {
		return fmt.Errorf(
			"%w: %d hazards, %d eligible cells around %d:%d",
			ErrInvalidConfig, b.hazards, eligible, excludeRow, excludeCol,
		)
	}

	placed, draws := 0, 0
	for placed < b.hazards {
		row, col := r.IntN(b.size), r.IntN(b.size)
		draws++
		if absDiff(row, excludeRow) <= 1 && absDiff(col, excludeCol) <= 1 {
			continue
		}
		if b.Get(row, col) != Hidden(false) {
			continue
		}
		b.Set(row, col, Hidden(true))
		placed++
	}
	b.seeded = true

	Log.WithFields(logrus.Fields{
		"hazards": placed,
		"draws":   draws,
		"start":   fmt.Sprintf("%d:%d", excludeRow, excludeCol),
	}).Debug("hazards seeded")
	return nil
}
