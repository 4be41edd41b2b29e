// Package spanning builds the weighted adjacency graph of a rectangular grid
// and grows a spanning tree over it, one visited cell at a time.
//
// Build scans the grid row by row from the top-left origin. Every cell gets
// the directions that stay inside the grid (2 at a corner, 3 on a border,
// 4 inside). An undirected edge gets one random weight when its upper or left
// endpoint is scanned. The lower or right endpoint reuses that weight, so
// both endpoints always agree.
//
// Growth is driven by the caller:
//
//   - Visit marks one cell visited and records its unvisited neighbours in
//     the frontier.
//   - VisitNextClosestUnvisitedNeighbor compares only the given cell's own
//     edges and visits the cheapest unvisited neighbour.
//   - Grow runs randomized Prim over the whole frontier and returns the
//     W·H−1 tree edges. Walk does the same with the local nearest-neighbour
//     step, backtracking at dead ends.
//
// A Tree is not safe for concurrent use.
package spanning
