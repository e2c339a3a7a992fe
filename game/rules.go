package game

// Rules describes the geometry of a board.
type Rules interface {
	HolesPerSide() int
	StartingMarbles() int
}
