package sudoku

import "math/rand/v2"

// Generate produces a fully solved grid: every row, column and box is a
// permutation of [1, side]. The fill is a constrained random walk over
// the cells; a cell with no remaining candidate abandons the whole
// attempt and starts over. No backtracking - restarts are cheap at the
// levels this game plays at.
func Generate(level int, r *rand.Rand) (Grid, error) {
	if level < MinLevel || level > MaxLevel {
		return nil, ErrInvalidLevel
	}
	for attempt := 1; ; attempt++ {
		if g, ok := fillOnce(level, r); ok {
			Log.WithField("attempts", attempt).Debug("grid generated")
			return g, nil
		}
	}
}

// fillOnce runs a single fill attempt. It keeps one set of still-unused
// values per row, column and box; each cell picks uniformly from the
// intersection of its three sets. ok is false on a dead end.
func fillOnce(level int, r *rand.Rand) (g Grid, ok bool) {
	var (
		side  = level * level
		rows  = make([]valueSet, side)
		cols  = make([]valueSet, side)
		boxes = make([]valueSet, side)
	)
	for i := range side {
		rows[i] = fullSet(side)
		cols[i] = fullSet(side)
		boxes[i] = fullSet(side)
	}

	g = NewGrid(level)
	for y := range side {
		for x := range side {
			b := boxIndex(x, y, level)
			candidates := rows[y] & cols[x] & boxes[b]
			if candidates == 0 {
				return nil, false
			}
			v := candidates.pick(r.IntN(candidates.count()))
			rows[y] = rows[y].remove(v)
			cols[x] = cols[x].remove(v)
			boxes[b] = boxes[b].remove(v)
			g[y][x] = v
		}
	}
	return g, true
}
