package sweeper

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Covered  CellState = iota
	Open               // Count holds the hazard neighbor count
	Exploded           // the virus that ended the game
	Mine               // hidden virus, only exposed once the game is over
)

type CellView struct {
	State CellState
	Count int
}

func (c CellView) String() string {
	switch c.State {
	case Covered:
		return "-"
	case Open:
		if c.Count == 0 {
			return "."
		}
		return strconv.Itoa(c.Count)
	case Exploded:
		return "X"
	case Mine:
		return "*"
	default:
		return "!"
	}
}

// View is a read-only copy of a session taken after a click settled.
type View struct {
	Size    int
	Hazards int
	Clicks  int
	Outcome Event
	Cells   []CellView // row-major
}

func (v View) At(row, col int) CellView {
	if row < 0 || row >= v.Size || col < 0 || col >= v.Size {
		panic(OutOfBoundsError{Row: row, Col: col, Size: v.Size})
	}
	return v.Cells[row*v.Size+col]
}

// Covered counts the cells the renderer still shows as unrevealed.
func (v View) Covered() (n int) {
	for _, c := range v.Cells {
		if c.State == Covered || c.State == Mine {
			n++
		}
	}
	return
}

func (v View) String() string {
	var b strings.Builder
	for row := range v.Size {
		for col := range v.Size {
			b.WriteString(v.At(row, col).String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Snapshot copies the current state for rendering. Hidden cells never leak
// whether they hold a hazard while the game is in progress; after a
// terminal event the remaining viruses are shown as [Mine].
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.board
	over := s.outcome.Terminal()
	v := View{
		Size:    b.size,
		Hazards: b.hazards,
		Clicks:  s.clicks,
		Outcome: s.outcome,
		Cells:   make([]CellView, len(b.cells)),
	}
	for i, c := range b.cells {
		switch {
		case c.IsRevealed():
			v.Cells[i] = CellView{State: Open, Count: c.Count()}
		case c.IsDetonated():
			v.Cells[i] = CellView{State: Exploded}
		case over && c.HasHazard():
			v.Cells[i] = CellView{State: Mine}
		default:
			v.Cells[i] = CellView{State: Covered}
		}
	}
	return v
}
