package game

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides of the board.
type Player int

const (
	PlayerA Player = iota
	PlayerB
)

type StateHash uint64

func (p Player) String() string {
	if p == PlayerB {
		return "B"
	}
	return "A"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == PlayerA {
		return PlayerB
	}
	return PlayerA
}

// ParsePlayer reads a player name ("A" or "B", any case).
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return PlayerA, nil
	case "B":
		return PlayerB, nil
	default:
		return PlayerA, fmt.Errorf("unknown player %q", s)
	}
}
