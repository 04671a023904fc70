package sweeper

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type Event int8

const (
	None Event = iota
	Defeat
	Victory
)

func (e Event) String() string {
	switch e {
	case Defeat:
		return "defeat"
	case Victory:
		return "victory"
	default:
		return "none"
	}
}

func (e Event) Terminal() bool {
	return e != None
}

// Session owns a board and is its only mutator. Clicks are serialized: a
// click holds the lock until its cascade and the terminal scan are done.
type Session struct {
	mu      sync.Mutex
	id      string
	board   *Board
	rnd     *rand.Rand
	clicks  int
	outcome Event
}

type SessionOption func(*Session)

// WithID overrides the generated session id.
func WithID(id string) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

func NewSession(p Params, r *rand.Rand, opts ...SessionOption) (*Session, error) {
	board, err := NewBoard(p)
	if err != nil {
		return nil, err
	}
	s := &Session{
		id:    uuid.NewString(),
		board: board,
		rnd:   r,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) ID() string { return s.id }

// Size is the grid side length. It is fixed at construction, so no lock is
// taken.
func (s *Session) Size() int { return s.board.size }

func (s *Session) Clicks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clicks
}

func (s *Session) Outcome() Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *Session) log() *logrus.Entry {
	return Log.WithField("session", s.id)
}

// Click reveals row:col and reports a terminal event if the click ended the
// game. Hazards are seeded on the first click so that it is always safe.
// A hit is a defeat even if it leaves only the hazards hidden. Once the
// game is over, further clicks change nothing.
//
// panics [OutOfBoundsError]
func (s *Session) Click(row, col int) Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := s.board
	if !b.InBounds(row, col) {
		panic(OutOfBoundsError{Row: row, Col: col, Size: b.size})
	}
	if s.outcome.Terminal() {
		s.log().WithField("outcome", s.outcome).Debug("click after game over")
		return s.outcome
	}

	s.clicks++
	if s.clicks == 1 && !b.seeded {
		if err := b.SeedHazards(row, col, s.rnd); err != nil {
			panic(AssertionError{"seeding validated board: " + err.Error()})
		}
	}

	c := b.Get(row, col)
	switch {
	case c.HasHazard():
		b.Set(row, col, Detonated())
		s.outcome = Defeat
		s.log().WithFields(logrus.Fields{
			"row": row, "col": col, "clicks": s.clicks,
		}).Info("virus hit")
		return s.outcome
	case c.IsHidden():
		b.cascade(row, col)
	default:
		s.log().WithFields(logrus.Fields{"row": row, "col": col}).
			Debug("redundant click")
	}

	if b.Count(Cell.IsHidden) == b.hazards {
		s.outcome = Victory
		s.log().WithField("clicks", s.clicks).Info("board cleared")
	}
	return s.outcome
}

// cascade opens row:col and, while the opened cells border no hazard, keeps
// opening their hidden safe neighbors. Each cell leaves Hidden(false) at most
// once, so the loop ends after at most one reveal per cell.
func (b *Board) cascade(row, col int) {
	stack := []Point{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b.Get(p.Row, p.Col) != Hidden(false) {
			continue
		}

		k := b.hazardNeighbors(p.Row, p.Col)
		b.Set(p.Row, p.Col, Revealed(k))
		if k != 0 {
			continue
		}
		for _, n := range b.Neighbors(p.Row, p.Col) {
			if b.Get(n.Row, n.Col) == Hidden(false) {
				stack = append(stack, n)
			}
		}
	}
}
