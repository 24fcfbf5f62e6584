package gridworld

import "fmt"

// Locate returns the row and column of the first cell holding tile,
// scanning rows top to bottom and each row left to right. It is meant for
// tiles that appear once; further occurrences are never reported.
func Locate(grid Grid, tile Tile) (int, int, error) {
	for r, row := range grid {
		for c, t := range row {
			if t == tile {
				return r, c, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("locate %q: %w", tile, ErrNotFound)
}

func count(grid Grid, tile Tile) int {
	n := 0
	for _, row := range grid {
		for _, t := range row {
			if t == tile {
				n++
			}
		}
	}
	return n
}
