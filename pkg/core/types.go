package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// CellGrid is the read-only view a renderer needs: dimensions plus a
// per-cell liveness query. Rows and columns are zero-based.
type CellGrid interface {
	Size() Size
	Alive(row, col uint32) bool
}
