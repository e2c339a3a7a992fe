package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMove   = errors.New("invalid move")
	ErrStoreSelected = fmt.Errorf("%w: stores cannot be selected", ErrInvalidMove)
	ErrOutOfRange    = fmt.Errorf("%w: hole is not on the board", ErrInvalidMove)
	ErrNotYourHole   = fmt.Errorf("%w: hole belongs to the opponent", ErrInvalidMove)
	ErrEmptyHole     = fmt.Errorf("%w: hole is empty", ErrInvalidMove)
)

// Outcome describes the result of an applied move.
type Outcome struct {
	Next      Player // player to move next
	Last      int    // hole where the last marble landed, -1 if nothing was sown
	Sowings   int    // sowing passes, chained ones included
	ExtraTurn bool   // last marble landed in the mover's store
}

// AttemptMove validates that the player may select the hole and, if so, sows
// it. A rejected move leaves the board untouched and hands the turn back to
// the same player together with an error wrapping ErrInvalidMove.
func (b *Board) AttemptMove(player Player, hole int) (Outcome, error) {
	if err := b.validateMove(player, hole); err != nil {
		return Outcome{Next: player, Last: -1}, err
	}
	return b.sow(player, hole)
}

func (b *Board) validateMove(player Player, hole int) error {
	if hole == b.StoreIndex(PlayerA) || hole == b.StoreIndex(PlayerB) {
		return fmt.Errorf("%w: hole %d", ErrStoreSelected, hole)
	}
	owner, ok := b.Owner(hole)
	if !ok {
		return fmt.Errorf("%w: hole %d", ErrOutOfRange, hole)
	}
	if owner != player {
		return fmt.Errorf("%w: hole %d", ErrNotYourHole, hole)
	}
	return nil
}

// sow empties the origin and distributes its marbles one by one over the
// following holes, skipping the opponent's store. Landing on a hole that was
// already occupied picks that hole up and keeps sowing.
func (b *Board) sow(player Player, origin int) (Outcome, error) {
	own := b.StoreIndex(player)
	skip := b.StoreIndex(player.Opponent())

	outcome := Outcome{Next: player, Last: -1}
	for {
		n := b.holes[origin].TakeAll()
		if n == 0 {
			// Only the selected hole can be empty; chained origins hold at least two.
			return outcome, fmt.Errorf("%w: hole %d", ErrEmptyHole, origin)
		}

		last := b.distribute(origin, n, skip)
		outcome.Last = last
		outcome.Sowings++

		switch {
		case last == own:
			outcome.ExtraTurn = true
			return outcome, nil
		case b.holes[last].Count() > 1:
			origin = last
		default:
			outcome.Next = player.Opponent()
			return outcome, nil
		}
	}
}

// distribute adds one marble to each of the n holes after origin, never
// counting skip, and returns the index of the last hole it filled.
func (b *Board) distribute(origin, n, skip int) int {
	idx := origin
	for n > 0 {
		idx = (idx + 1) % len(b.holes)
		if idx == skip {
			continue
		}
		b.holes[idx].Add(1)
		n--
	}
	return idx
}
