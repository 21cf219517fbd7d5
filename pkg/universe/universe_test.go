package universe

import (
	"testing"

	"toruslife/pkg/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coord [2]uint32

func liveSet(u *Universe) map[coord]bool {
	live := map[coord]bool{}
	for row := uint32(0); row < u.Height(); row++ {
		for col := uint32(0); col < u.Width(); col++ {
			if u.Alive(row, col) {
				live[coord{row, col}] = true
			}
		}
	}
	return live
}

func mustRows(t *testing.T, rows ...string) *Universe {
	t.Helper()
	u, err := FromRows(rows)
	require.NoError(t, err)
	return u
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	cases := []struct {
		name string
		w, h uint32
	}{
		{"zero width", 0, 8},
		{"zero height", 8, 0},
		{"both zero", 0, 0},
		{"index overflow", 1 << 16, 1 << 16},
		{"max by max", ^uint32(0), ^uint32(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := New(tc.w, tc.h, core.NewSequence(true))
			require.ErrorIs(t, err, ErrInvalidDimensions)
			assert.Nil(t, u)
		})
	}
}

func TestNewDrawsOneOutcomePerCell(t *testing.T) {
	src := core.NewSequence(true, false, false)
	u, err := New(3, 2, src)
	require.NoError(t, err)

	assert.Equal(t, 6, src.Drawn())
	assert.Equal(t, []Cell{Alive, Dead, Dead, Alive, Dead, Dead}, u.Cells())
	assert.Equal(t, uint64(0), u.Generation())
}

func TestNewDefaultDensity(t *testing.T) {
	u := NewDefault(core.NewRNG(1))

	assert.Equal(t, DefaultWidth, u.Width())
	assert.Equal(t, DefaultHeight, u.Height())
	assert.Equal(t, core.Size{W: 64, H: 64}, u.Size())
	require.Equal(t, 64*64, u.Len())

	// 0.7 of 4096 is ~2867 with a standard deviation near 29.
	pop := u.Population()
	assert.Greater(t, pop, 2600)
	assert.Less(t, pop, 3130)
}

func TestCellCountHoldsAcrossTicks(t *testing.T) {
	u, err := New(7, 3, core.NewRNG(99))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		u.Tick()
		require.Equal(t, 21, u.Len())
		require.Len(t, u.Cells(), 21)
	}
	assert.Equal(t, uint64(20), u.Generation())
}

func TestNeighborCountWrapsEachAxisOnItsOwnLength(t *testing.T) {
	// 3 rows by 5 columns: a column wrap taken modulo the height would land
	// on column 1 instead of column 4.
	u, err := Empty(5, 3)
	require.NoError(t, err)
	require.NoError(t, u.Set(2, 4, Alive)) // diagonal, both axes wrap
	require.NoError(t, u.Set(0, 4, Alive)) // column wrap
	require.NoError(t, u.Set(2, 0, Alive)) // row wrap

	assert.Equal(t, 3, u.NeighborCount(0, 0))
	assert.Equal(t, 0, u.NeighborCount(0, 2))
}

func TestNeighborCountCountsOppositeEdges(t *testing.T) {
	u, err := Empty(7, 4)
	require.NoError(t, err)
	require.NoError(t, u.Set(1, 6, Alive))
	require.NoError(t, u.Set(3, 3, Alive))

	assert.Equal(t, 1, u.NeighborCount(1, 0), "col 0 sees col width-1")
	assert.Equal(t, 1, u.NeighborCount(0, 3), "row 0 sees row height-1")
	assert.Equal(t, 0, u.NeighborCount(1, 3))
}

func TestTickRuleTable(t *testing.T) {
	// On a 3x3 torus every other cell is a neighbor of the center, so the
	// first n non-center cells give the center exactly n live neighbors.
	others := []coord{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, start := range []Cell{Dead, Alive} {
		for n := 0; n <= 8; n++ {
			u, err := Empty(3, 3)
			require.NoError(t, err)
			require.NoError(t, u.Set(1, 1, start))
			for _, c := range others[:n] {
				require.NoError(t, u.Set(c[0], c[1], Alive))
			}
			require.Equal(t, n, u.NeighborCount(1, 1))

			u.Tick()
			got, err := u.CellState(1, 1)
			require.NoError(t, err)

			want := Dead
			if n == 3 || (start == Alive && n == 2) {
				want = Alive
			}
			assert.Equal(t, want, got, "start=%v neighbors=%d", start, n)
		}
	}
}

func TestAllDeadStaysDead(t *testing.T) {
	u, err := Empty(9, 4)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		u.Tick()
		assert.Zero(t, u.Population())
	}
}

func TestLoneCellDies(t *testing.T) {
	u := mustRows(t,
		".....",
		".....",
		"..#..",
		".....",
	)
	u.Tick()
	assert.Zero(t, u.Population())
}

func TestBlockIsStillLife(t *testing.T) {
	u := mustRows(t,
		"......",
		".##...",
		".##...",
		"......",
	)
	want := u.String()
	for i := 0; i < 10; i++ {
		u.Tick()
		require.Equal(t, want, u.String(), "after %d ticks", i+1)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u := mustRows(t,
		".....",
		"..#..",
		"..#..",
		"..#..",
		".....",
	)

	u.Tick()
	assert.Equal(t, map[coord]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}, liveSet(u))

	u.Tick()
	assert.Equal(t, map[coord]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}, liveSet(u))
}

func TestGliderCrossesNonSquareEdges(t *testing.T) {
	u, err := Empty(8, 6)
	require.NoError(t, err)
	glider := []coord{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}
	for _, c := range glider {
		require.NoError(t, u.Set(c[0]+3, c[1]+5, Alive))
	}

	for i := 0; i < 4; i++ {
		u.Tick()
	}

	want := map[coord]bool{}
	for _, c := range glider {
		want[coord{(c[0] + 4) % 6, (c[1] + 6) % 8}] = true
	}
	assert.Equal(t, want, liveSet(u))
}

func TestCheckedAccessors(t *testing.T) {
	u, err := Empty(4, 2)
	require.NoError(t, err)

	_, err = u.CellState(2, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = u.CellState(0, 4)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.ErrorIs(t, u.Set(5, 5, Alive), ErrOutOfBounds)
	assert.Error(t, u.Set(0, 0, Cell(7)))
	assert.False(t, u.Alive(9, 9))

	require.NoError(t, u.Set(1, 3, Alive))
	c, err := u.CellState(1, 3)
	require.NoError(t, err)
	assert.Equal(t, Alive, c)
	assert.True(t, u.Alive(1, 3))
}

func TestCellsReturnsACopy(t *testing.T) {
	u, err := Empty(2, 2)
	require.NoError(t, err)

	cells := u.Cells()
	cells[0] = Alive

	assert.False(t, u.Alive(0, 0))
}

func TestClearAndReset(t *testing.T) {
	u, err := New(4, 4, core.NewSequence(true))
	require.NoError(t, err)
	u.Tick()
	require.Equal(t, uint64(1), u.Generation())

	u.Clear()
	assert.Zero(t, u.Population())
	assert.Zero(t, u.Generation())

	u.Tick()
	u.Reset(core.NewSequence(true, false))
	assert.Equal(t, 8, u.Population())
	assert.Zero(t, u.Generation())
}
