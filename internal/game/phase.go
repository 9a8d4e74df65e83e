package game

// Phase is the round lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota // waiting for the player to start
	PhasePlaying
	PhaseWon  // score reached winScore
	PhaseLost // all three batteries destroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}
