package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseDigits builds a Grid from rows of ASCII digits, one cell per character.
// Leading and trailing blank lines and carriage returns are ignored; a blank
// line between two rows is a ragged row.
//
// Every failure wraps ErrMalformedGrid; ragged rows additionally wrap
// ErrNonRectangular and empty input wraps ErrEmptyGrid.
func ParseDigits(lines []string) (*Grid, error) {
	rows := trimBlankEdges(lines)
	if len(rows) == 0 || rows[0] == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedGrid, ErrEmptyGrid)
	}

	w := len(rows[0])
	costs := make([][]int, len(rows))
	for r, line := range rows {
		if len(line) != w {
			return nil, fmt.Errorf("%w: %w: row %d has %d cells, want %d",
				ErrMalformedGrid, ErrNonRectangular, r, len(line), w)
		}
		row := make([]int, w)
		for c := 0; c < w; c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: non-digit %q at (%d,%d)", ErrMalformedGrid, ch, r, c)
			}
			row[c] = int(ch - '0')
		}
		costs[r] = row
	}

	return NewGrid(costs)
}

// Read parses a digit grid from r, one row per line.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading input: %w", err)
	}

	return ParseDigits(lines)
}

// LoadFile parses the digit grid stored at path.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: opening %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return g, nil
}

func trimBlankEdges(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, "\r")
	}
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}

	return out
}
