package state

// GameState represents the current state of the fight
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateVictory
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateVictory:
		return "Victory"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
