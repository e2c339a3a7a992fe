package game

// Hole is a pit holding a number of marbles.
type Hole struct {
	marbles int
}

// Add puts n marbles into the hole.
func (h *Hole) Add(n int) {
	h.marbles += n
}

// TakeAll empties the hole and returns how many marbles it held.
func (h *Hole) TakeAll() int {
	n := h.marbles
	h.marbles = 0
	return n
}

func (h Hole) Count() int {
	return h.marbles
}
