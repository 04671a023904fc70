package sweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotHidesHazardsDuringPlay(t *testing.T) {
	s := newRiggedSession(t, 4, Point{0, 0}, Point{3, 3})

	s.Click(0, 1)
	v := s.Snapshot()

	assert.Equal(t, 4, v.Size)
	assert.Equal(t, 2, v.Hazards)
	assert.Equal(t, 1, v.Clicks)
	assert.Equal(t, None, v.Outcome)
	assert.Equal(t, CellView{State: Open, Count: 1}, v.At(0, 1))
	assert.Equal(t, CellView{State: Covered}, v.At(0, 0))
	assert.Equal(t, CellView{State: Covered}, v.At(3, 3))
	assert.Equal(t, 15, v.Covered())
}

func TestSnapshotAfterDefeat(t *testing.T) {
	s := newRiggedSession(t, 4, Point{0, 0}, Point{3, 3})

	s.Click(0, 1)
	s.Click(3, 3)
	v := s.Snapshot()

	assert.Equal(t, Defeat, v.Outcome)
	assert.Equal(t, CellView{State: Exploded}, v.At(3, 3))
	assert.Equal(t, CellView{State: Mine}, v.At(0, 0))
	assert.Equal(t, CellView{State: Covered}, v.At(2, 2))
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newRiggedSession(t, 4, Point{0, 0}, Point{3, 3})

	v := s.Snapshot()
	s.Click(0, 1)

	assert.Equal(t, CellView{State: Covered}, v.At(0, 1))
	assert.Zero(t, v.Clicks)
}

func TestViewString(t *testing.T) {
	s := newRiggedSession(t, 4, Point{0, 0}, Point{3, 3})

	s.Click(0, 1)
	s.Click(0, 0)

	want := "X 1 - - \n" +
		"- - - - \n" +
		"- - - - \n" +
		"- - - * \n"
	assert.Equal(t, want, s.Snapshot().String())
}

func TestViewAtOutOfBounds(t *testing.T) {
	v := View{Size: 2, Cells: make([]CellView, 4)}
	assert.Panics(t, func() { v.At(2, 0) })
}
