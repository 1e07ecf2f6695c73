package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhaseInProgress - Board generated, reveals accepted
	PhaseInProgress GamePhase = iota

	// PhaseLost - A black hole was opened
	PhaseLost

	// PhaseWon - Every safe cell is open
	PhaseWon
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhaseInProgress:
		return "InProgress"
	case PhaseLost:
		return "Lost"
	case PhaseWon:
		return "Won"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseLost || p == PhaseWon
}

// CanReceiveReveals returns true if the game can process reveals in this phase
func (p GamePhase) CanReceiveReveals() bool {
	return p == PhaseInProgress
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhaseInProgress:
		return []GamePhase{PhaseLost, PhaseWon}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}
