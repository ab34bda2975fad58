package grid

import "strings"

// String renders the grid as newline-separated rows. Costs above 9 are
// rendered modulo 10 so every cell stays one character wide.
func (g *Grid) String() string {
	return strings.Join(g.Overlay(nil), "\n")
}

// Overlay renders the grid one row per string with the cells of path (after
// the first) replaced by the arrow of the step that entered them.
// Steps that are not orthogonal neighbours are left unmarked.
func (g *Grid) Overlay(path []Position) []string {
	buf := make([][]byte, g.height)
	for r := 0; r < g.height; r++ {
		row := make([]byte, g.width)
		for c := 0; c < g.width; c++ {
			row[c] = byte('0' + g.cells[r*g.width+c]%10)
		}
		buf[r] = row
	}
	for i := 1; i < len(path); i++ {
		d, ok := path[i-1].DirectionTo(path[i])
		if !ok || !g.InBounds(path[i]) {
			continue
		}
		buf[path[i].Row][path[i].Col] = d.Glyph()
	}

	out := make([]string, g.height)
	for r := range buf {
		out[r] = string(buf[r])
	}

	return out
}
