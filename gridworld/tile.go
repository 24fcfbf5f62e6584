package gridworld

type Tile rune

const (
	White    Tile = 'W'
	Red      Tile = 'R'
	Yellow   Tile = 'Y'
	Blue     Tile = 'B'
	Green    Tile = 'G'
	Terminal Tile = 'T'
)

func (t Tile) String() string {
	return string(t)
}

// Name is the long form used in messages and renderers.
func (t Tile) Name() string {
	switch t {
	case White:
		return "white"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

type tileSet map[Tile]bool

func (ts tileSet) has(t Tile) bool {
	return ts[t]
}

var (
	teleportTiles = tileSet{White: true, Red: true, Yellow: true, Blue: true, Green: true}
	terminalTiles = tileSet{White: true, Red: true, Yellow: true, Blue: true, Green: true, Terminal: true}
)
