package spanning

import (
	"fmt"

	"github.com/vovakirdan/tui-maze/internal/core"
)

// Edge is one tree edge, taken from From in direction Dir.
type Edge struct {
	From   core.Point
	Dir    core.Direction
	Weight int64
}

// To returns the far endpoint of the edge.
func (e Edge) To() core.Point {
	return e.From.Offset(e.Dir)
}

// String returns "(x,y)->(x,y)".
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s", e.From, e.To())
}
