package game

import (
	"encoding/binary"
	"hash/fnv"
)

// Winner reports whether the game is decided.
//
// A store holding more than half of the marbles wins outright. Otherwise the
// game ends once one side has no marbles left in its play holes, and the side
// with more marbles remaining wins; equal sides go to player B.
func (b *Board) Winner() (Player, bool) {
	majority := b.rules.StartingMarbles() * b.rules.HolesPerSide()
	if b.Store(PlayerA) > majority {
		return PlayerA, true
	}
	if b.Store(PlayerB) > majority {
		return PlayerB, true
	}

	sideA := b.SideCount(PlayerA)
	sideB := b.SideCount(PlayerB)
	if sideA == 0 || sideB == 0 {
		if sideA > sideB {
			return PlayerA, true
		}
		return PlayerB, true
	}
	return PlayerA, false
}

// LegalMoves returns the player's play holes that still hold marbles.
func (b *Board) LegalMoves(p Player) []int {
	var moves []int
	first := b.firstHole(p)
	for i := first; i < first+b.rules.HolesPerSide(); i++ {
		if b.holes[i].Count() > 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

// Copy returns an independent board with the same rules and hole counts.
func (b *Board) Copy() *Board {
	holesCopy := make([]Hole, len(b.holes))
	copy(holesCopy, b.holes)

	return &Board{
		rules: b.rules, // rules are never mutated
		holes: holesCopy,
	}
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	for _, h := range b.holes {
		binary.Write(hasher, binary.LittleEndian, int64(h.Count()))
	}

	return StateHash(hasher.Sum64())
}
