package game

import (
	"fmt"
	"strings"
)

// String draws the board from player A's seat: B's holes run right to left
// along the top, A's holes left to right along the bottom, B's store on the
// left and A's store on the right. Each play hole is labelled with its index.
func (b *Board) String() string {
	var sb strings.Builder
	n := b.rules.HolesPerSide()
	firstA, firstB := b.firstHole(PlayerA), b.firstHole(PlayerB)

	sb.WriteString("|  ")
	for idx := firstB + n - 1; idx >= firstB; idx-- {
		fmt.Fprintf(&sb, "|%02d", idx)
	}
	sb.WriteString("|  |\n")

	sb.WriteString("|  |")
	for idx := firstB + n - 1; idx >= firstB; idx-- {
		fmt.Fprintf(&sb, "%02d|", b.holes[idx].Count())
	}
	sb.WriteString("  |\n")

	fmt.Fprintf(&sb, "|%02d|", b.Store(PlayerB))
	sb.WriteString(strings.Repeat("---", n-1))
	fmt.Fprintf(&sb, "--|%02d|\n", b.Store(PlayerA))

	sb.WriteString("|  |")
	for idx := firstA; idx < firstA+n; idx++ {
		fmt.Fprintf(&sb, "%02d|", b.holes[idx].Count())
	}
	sb.WriteString("  |\n")

	sb.WriteString("|  ")
	for idx := firstA; idx < firstA+n; idx++ {
		fmt.Fprintf(&sb, "|%02d", idx)
	}
	sb.WriteString("|  |\n")

	return sb.String()
}
