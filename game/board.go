package game

import (
	"errors"
	"fmt"

	"mancala/utils"
)

var ErrInvalidBoard = errors.New("invalid board")

// Board is a Kalah board laid out as a ring. With n holes per side, indices
// 0..n-1 belong to player A, n is A's store, n+1..2n belong to player B and
// 2n+1 is B's store. Sowing walks the ring in increasing index order.
type Board struct {
	rules Rules
	holes []Hole
}

// NewBoard initializes and returns a board ready for the first move.
func NewBoard(rules Rules) *Board {
	n := rules.HolesPerSide()
	b := &Board{
		rules: rules,
		holes: make([]Hole, 2*n+2),
	}
	for i := range b.holes {
		if i == b.StoreIndex(PlayerA) || i == b.StoreIndex(PlayerB) {
			continue
		}
		b.holes[i].Add(rules.StartingMarbles())
	}
	return b
}

// NewBoardWithHoles builds a board from explicit hole counts, in ring order.
func NewBoardWithHoles(rules Rules, counts []int) (*Board, error) {
	size := 2*rules.HolesPerSide() + 2
	if len(counts) != size {
		return nil, fmt.Errorf("%w: expected %d holes, got %d", ErrInvalidBoard, size, len(counts))
	}
	b := &Board{
		rules: rules,
		holes: make([]Hole, size),
	}
	for i, c := range counts {
		if c < 0 {
			return nil, fmt.Errorf("%w: hole %d has %d marbles", ErrInvalidBoard, i, c)
		}
		b.holes[i].Add(c)
	}
	return b, nil
}

func (b *Board) Rules() Rules {
	return b.rules
}

// Len returns the number of holes on the board, stores included.
func (b *Board) Len() int {
	return len(b.holes)
}

func (b *Board) StoreIndex(p Player) int {
	n := b.rules.HolesPerSide()
	if p == PlayerB {
		return 2*n + 1
	}
	return n
}

// firstHole returns the index of the player's leftmost play hole.
func (b *Board) firstHole(p Player) int {
	if p == PlayerB {
		return b.rules.HolesPerSide() + 1
	}
	return 0
}

// Owner reports which player may select the hole. Stores and indices off the
// board have no owner.
func (b *Board) Owner(hole int) (Player, bool) {
	n := b.rules.HolesPerSide()
	switch {
	case hole >= 0 && hole < n:
		return PlayerA, true
	case hole > n && hole <= 2*n:
		return PlayerB, true
	default:
		return PlayerA, false
	}
}

// Count returns the marbles in a hole, or 0 for an index off the board.
func (b *Board) Count(hole int) int {
	if hole < 0 || hole >= len(b.holes) {
		return 0
	}
	return b.holes[hole].Count()
}

// Holes returns a snapshot of all hole counts in ring order.
func (b *Board) Holes() []int {
	counts := make([]int, len(b.holes))
	for i, h := range b.holes {
		counts[i] = h.Count()
	}
	return counts
}

func (b *Board) Store(p Player) int {
	return b.holes[b.StoreIndex(p)].Count()
}

// SideCount sums the marbles left in the player's play holes.
func (b *Board) SideCount(p Player) int {
	first := b.firstHole(p)
	return utils.SumBy(b.holes[first:first+b.rules.HolesPerSide()], Hole.Count)
}

// Total returns the number of marbles on the board.
func (b *Board) Total() int {
	return utils.SumBy(b.holes, Hole.Count)
}
