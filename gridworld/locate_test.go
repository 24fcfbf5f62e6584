package gridworld

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	grid := TerminalGrid()

	t.Run("finds unique tiles", func(t *testing.T) {
		cases := map[Tile][2]int{
			Red:    {4, 2},
			Yellow: {4, 4},
			Blue:   {0, 1},
			Green:  {0, 4},
		}
		for tile, want := range cases {
			r, c, err := Locate(grid, tile)
			require.NoError(t, err)
			assert.Equal(t, want, [2]int{r, c}, "tile %v", tile)
		}
	})

	t.Run("returns first match in row-major order", func(t *testing.T) {
		r, c, err := Locate(grid, Terminal)
		require.NoError(t, err)
		assert.Equal(t, 2, r)
		assert.Equal(t, 4, c)
	})

	t.Run("missing tile", func(t *testing.T) {
		_, _, err := Locate(grid, Tile('X'))
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestParseGrid(t *testing.T) {
	t.Run("trims rows", func(t *testing.T) {
		g, err := ParseGrid("  WB ", "RY")
		require.NoError(t, err)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
		assert.Equal(t, "WB\nRY", g.String())
	})

	t.Run("rejects ragged rows", func(t *testing.T) {
		_, err := ParseGrid("WWW", "WW")
		assert.ErrorIs(t, err, ErrMalformedGrid)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := ParseGrid()
		assert.ErrorIs(t, err, ErrMalformedGrid)
		_, err = ParseGrid("")
		assert.ErrorIs(t, err, ErrMalformedGrid)
	})
}

func TestReadGrid(t *testing.T) {
	src := "# stock teleport map\nWBWWG\nWWWWW\n\nWWWWW\nWWRWW\nWWWWY\n"
	g, err := ReadGrid(strings.NewReader(src))
	require.NoError(t, err)
	assert.True(t, g.Equal(TeleportGrid()))
}

func TestGridClone(t *testing.T) {
	g := TeleportGrid()
	c := g.Clone()
	c[0][0] = Red
	assert.Equal(t, White, g[0][0])
	assert.False(t, g.Equal(c))
}
