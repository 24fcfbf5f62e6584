package gridworld

import "errors"

var (
	ErrNotFound      = errors.New("tile not found")
	ErrInvalidTile   = errors.New("invalid tile")
	ErrDuplicateTile = errors.New("duplicate tile")
	ErrMalformedGrid = errors.New("malformed grid")
)
