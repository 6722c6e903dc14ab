package sudoku

import "math/rand/v2"

// Mask derives a playable puzzle from a solved grid by zeroing
// floor(fraction * side * side) distinct cells chosen uniformly at
// random. The returned set holds exactly the zeroed positions; those
// are the cells the player may edit. fraction is expected in [0, 1).
func Mask(g Grid, fraction float64, r *rand.Rand) (Grid, PosSet) {
	var (
		side    = g.Side()
		cells   = side * side
		removed = int(fraction * float64(cells))
	)
	if removed < 0 {
		removed = 0
	}
	if removed > cells {
		removed = cells
	}

	// Rejection sampling; the map takes care of duplicates.
	editable := make(PosSet, removed)
	for len(editable) < removed {
		editable.Add(Pos{X: r.IntN(side), Y: r.IntN(side)})
	}

	overlay := g.Clone()
	for p := range editable {
		overlay[p.Y][p.X] = 0
	}
	return overlay, editable
}
