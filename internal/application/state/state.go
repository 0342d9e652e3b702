package state

// GameState represents the current state of the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StateDead
	StateWin
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateDead:
		return "Dead"
	case StateWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for states that only an explicit reset can leave
func (s GameState) IsTerminal() bool {
	return s == StateDead || s == StateWin
}
