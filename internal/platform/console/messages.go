package console

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
)

// Prompt is shown before every line of human input.
const Prompt = "Enter coordinates (x y): "

// Message returns the player-facing text for ev, or "" for events that have
// no text of their own (boards and prompts).
func Message(ev seabattle.Event) string {
	switch e := ev.(type) {
	case seabattle.MatchStartedEvent:
		return fmt.Sprintf("Welcome to Sea Battle! Match %s, seed %d.", e.MatchID, e.Seed)
	case seabattle.FleetIncompleteEvent:
		return fmt.Sprintf("Could not place all ships: the %s fleet has %d of %d.", e.Side, e.Placed, e.Wanted)
	case seabattle.InputRejectedEvent:
		return fmt.Sprintf("Invalid input %q: %s.", e.Input, e.Reason)
	case seabattle.ShotRejectedEvent:
		switch {
		case errors.Is(e.Err, seabattle.ErrOutOfBounds):
			return fmt.Sprintf("%s is outside the board!", e.Coord)
		case errors.Is(e.Err, seabattle.ErrDuplicateShot):
			return fmt.Sprintf("%s was already fired at!", e.Coord)
		}
		return e.Err.Error()
	case seabattle.ShotFiredEvent:
		return fmt.Sprintf("%s fired at %s: %s", shooter(e.Side), e.Result.Coord, outcome(e.Result))
	case seabattle.TurnPassedEvent:
		if e.To == seabattle.SideAutomated {
			return "Opponent's move!"
		}
		return "Your move!"
	case seabattle.MatchEndedEvent:
		return fmt.Sprintf("Match %s ended after %d rounds.", e.MatchID, e.Rounds)
	}
	return ""
}

func shooter(s seabattle.Side) string {
	if s == seabattle.SideHuman {
		return "You"
	}
	return "Opponent"
}

func outcome(r seabattle.ShotResult) string {
	switch {
	case r.Sunk:
		return "hit, ship sunk!"
	case r.Hit:
		return "hit!"
	default:
		return "miss."
	}
}
