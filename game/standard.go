package game

import (
	"errors"
	"fmt"

	"mancala/meta"
)

var ErrInvalidRules = errors.New("invalid rules")

type StandardRules struct {
	Holes   int
	Marbles int
}

// NewStandardRules returns the Kalah setup: six holes per side, four marbles each.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		Holes:   meta.HOLES_PER_SIDE,
		Marbles: meta.STARTING_MARBLES,
	}
}

func NewRules(holes, marbles int) (*StandardRules, error) {
	if holes <= 0 {
		return nil, fmt.Errorf("%w: holes per side must be positive, got %d", ErrInvalidRules, holes)
	}
	if marbles <= 0 {
		return nil, fmt.Errorf("%w: starting marbles must be positive, got %d", ErrInvalidRules, marbles)
	}
	return &StandardRules{Holes: holes, Marbles: marbles}, nil
}

func (sr *StandardRules) HolesPerSide() int {
	return sr.Holes
}

func (sr *StandardRules) StartingMarbles() int {
	return sr.Marbles
}
