package chess

// Move is a (from, to) square pair. Captures are implied by the occupant of To.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long algebraic form (e.g. "e2e4").
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
