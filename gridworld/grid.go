package gridworld

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is a rectangular tile map indexed as grid[row][col].
type Grid [][]Tile

// ParseGrid builds a grid from one string per row, one rune per cell.
// Leading and trailing whitespace of each row is dropped.
func ParseGrid(rows ...string) (Grid, error) {
	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		row = strings.TrimSpace(row)
		line := make([]Tile, 0, len(row))
		for _, char := range row {
			line = append(line, Tile(char))
		}
		grid = append(grid, line)
	}
	if err := grid.checkShape(); err != nil {
		return nil, err
	}
	return grid, nil
}

// ReadGrid parses a map with one row per line. Blank lines and lines
// starting with '#' are skipped.
func ReadGrid(reader io.Reader) (Grid, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	var rows []string
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		rows = append(rows, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	return ParseGrid(rows...)
}

func (g Grid) Rows() int {
	return len(g)
}

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < g.Rows() && col < g.Cols()
}

func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = append([]Tile(nil), row...)
	}
	return out
}

func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, t := range row {
			sb.WriteRune(rune(t))
		}
	}
	return sb.String()
}

func (g Grid) checkShape() error {
	if len(g) == 0 {
		return fmt.Errorf("%w: no rows", ErrMalformedGrid)
	}
	cols := len(g[0])
	if cols == 0 {
		return fmt.Errorf("%w: empty row 0", ErrMalformedGrid)
	}
	for r, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, r, len(row), cols)
		}
	}
	return nil
}
