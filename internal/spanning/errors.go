package spanning

import "errors"

var (
	// ErrGridTooSmall indicates a width or height of 1 or less.
	ErrGridTooSmall = errors.New("spanning: grid must be at least 2 columns by 2 rows")
	// ErrUnknownPoint indicates a point that is not a key of the adjacency map.
	ErrUnknownPoint = errors.New("spanning: unknown point")
	// ErrStuck indicates every neighbour of the point is already visited.
	ErrStuck = errors.New("spanning: no unvisited neighbour")
	// ErrScanOrder indicates an upper or left neighbour was not processed before the current cell.
	ErrScanOrder = errors.New("spanning: cells must be scanned row-major from the top-left")
	// ErrAlreadyGrown indicates growth was requested on a tree that already has visited cells.
	ErrAlreadyGrown = errors.New("spanning: tree already has visited points, rebuild it first")
)
