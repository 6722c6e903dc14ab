package sudoku

// IsComplete reports whether g is a finished, correct puzzle: no empty
// cells and every row, column and box a permutation of [1, side]. It is
// cheap enough to run after every single edit.
func IsComplete(g Grid, level int) bool {
	var (
		side  = level * level
		rows  = make([]valueSet, side)
		cols  = make([]valueSet, side)
		boxes = make([]valueSet, side)
	)
	if g.Side() != side {
		return false
	}
	for y := range side {
		for x := range side {
			v := g[y][x]
			if v < 1 || v > side {
				return false
			}
			b := boxIndex(x, y, level)
			if rows[y].has(v) || cols[x].has(v) || boxes[b].has(v) {
				return false
			}
			rows[y] = rows[y].add(v)
			cols[x] = cols[x].add(v)
			boxes[b] = boxes[b].add(v)
		}
	}
	return true
}
