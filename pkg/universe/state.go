package universe

import "fmt"

// State is the persisted form of a universe: its dimensions and cells in
// row-major order. The generation count is not part of it.
type State struct {
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
	Cells  []Cell `json:"cells"`
}

// State returns a copy of the universe's persistable state.
func (u *Universe) State() State {
	return State{Width: u.width, Height: u.height, Cells: u.Cells()}
}

// FromState rebuilds a universe from st. The state must have non-zero
// dimensions, exactly Width*Height cells, and only Dead/Alive values.
func FromState(st State) (*Universe, error) {
	u, err := Empty(st.Width, st.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}
	if len(st.Cells) != len(u.cells) {
		return nil, fmt.Errorf("%w: %d cells for a %dx%d grid", ErrInvalidState, len(st.Cells), st.Width, st.Height)
	}
	for i, c := range st.Cells {
		if !c.valid() {
			return nil, fmt.Errorf("%w: cell %d has value %d", ErrInvalidState, i, c)
		}
	}
	copy(u.cells, st.Cells)
	return u, nil
}
