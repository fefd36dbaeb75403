package seabattle

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
)

// scriptedInput replays fixed lines, then returns io.EOF.
type scriptedInput struct {
	lines []string
}

func (s *scriptedInput) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

// recorder collects published events.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) count(match func(Event) bool) int {
	n := 0
	for _, ev := range r.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		line   string
		coord  Coord
		reason string
	}{
		{"3 4", C(3, 4), ""},
		{"  1\t6 ", C(1, 6), ""},
		{"7 1", C(7, 1), ""}, // unchecked here, FireAt rejects it
		{"-1 2", C(-1, 2), ""},
		{"", Coord{}, ReasonTokenCount},
		{"1", Coord{}, ReasonTokenCount},
		{"1 2 3", Coord{}, ReasonTokenCount},
		{"a b", Coord{}, ReasonNotInteger},
		{"1 b", Coord{}, ReasonNotInteger},
		{"1.5 2", Coord{}, ReasonNotInteger},
	}

	for _, tc := range tests {
		c, reason := parseTarget(tc.line)
		if reason != tc.reason {
			t.Errorf("parseTarget(%q) reason = %q, expected %q", tc.line, reason, tc.reason)
		}
		if reason == "" && c != tc.coord {
			t.Errorf("parseTarget(%q) = %v, expected %v", tc.line, c, tc.coord)
		}
	}
}

func TestHumanTakeTurnRetriesUntilAccepted(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	if err := opponent.Place(NewVessel(C(2, 2), 1, Horizontal)); err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if _, err := opponent.FireAt(C(5, 5)); err != nil {
		t.Fatalf("FireAt() failed: %v", err)
	}

	events := &recorder{}
	input := &scriptedInput{lines: []string{
		"hello",  // not two tokens
		"x y",    // not integers
		"7 1",    // out of bounds
		"5 5",    // already fired at
		"2 2",    // hit
		"unused", // must not be read
	}}
	h := NewHuman(own, opponent, input, events)

	res, err := h.TakeTurn(context.Background(), opponent)
	if err != nil {
		t.Fatalf("TakeTurn() failed: %v", err)
	}
	if !res.Hit || !res.Sunk || res.Coord != C(2, 2) {
		t.Errorf("TakeTurn() = %+v, expected sinking hit at (2, 2)", res)
	}
	if len(input.lines) != 1 {
		t.Errorf("TakeTurn() consumed %d lines, expected 5", 6-len(input.lines))
	}

	rejectedInput := events.count(func(ev Event) bool { _, ok := ev.(InputRejectedEvent); return ok })
	if rejectedInput != 2 {
		t.Errorf("InputRejectedEvent count = %d, expected 2", rejectedInput)
	}
	var outOfBounds, duplicate int
	for _, ev := range events.events {
		if rej, ok := ev.(ShotRejectedEvent); ok {
			switch {
			case errors.Is(rej.Err, ErrOutOfBounds):
				outOfBounds++
			case errors.Is(rej.Err, ErrDuplicateShot):
				duplicate++
			}
		}
	}
	if outOfBounds != 1 || duplicate != 1 {
		t.Errorf("shot rejections: %d out of bounds, %d duplicate; expected 1 and 1", outOfBounds, duplicate)
	}
	fired := events.count(func(ev Event) bool { _, ok := ev.(ShotFiredEvent); return ok })
	if fired != 1 {
		t.Errorf("ShotFiredEvent count = %d, expected 1", fired)
	}
	if len(opponent.Shots()) != 2 {
		t.Errorf("opponent has %d shots, expected 2", len(opponent.Shots()))
	}
}

func TestHumanTakeTurnInputError(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	h := NewHuman(own, opponent, &scriptedInput{}, nil)

	_, err := h.TakeTurn(context.Background(), opponent)
	if !errors.Is(err, io.EOF) {
		t.Errorf("TakeTurn() error = %v, expected io.EOF", err)
	}
	if len(opponent.Shots()) != 0 {
		t.Error("failed turn recorded a shot")
	}
}

func TestTakeTurnCancelled(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	a := NewAutomated(own, opponent, rand.New(rand.NewSource(1)), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := a.TakeTurn(ctx, opponent); !errors.Is(err, context.Canceled) {
		t.Errorf("TakeTurn() error = %v, expected context.Canceled", err)
	}
}

func TestAutomatedSelectTarget(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	a := NewAutomated(own, opponent, rand.New(rand.NewSource(7)), nil)

	for range 500 {
		c, ok, err := a.SelectTarget(context.Background(), opponent)
		if err != nil {
			t.Fatalf("SelectTarget() failed: %v", err)
		}
		if !ok {
			t.Fatal("SelectTarget() found no candidate on a fresh grid")
		}
		if !opponent.InBounds(c) {
			t.Fatalf("SelectTarget() = %v, out of bounds", c)
		}
	}
}

func TestAutomatedNeverRepeats(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	events := &recorder{}
	a := NewAutomated(own, opponent, rand.New(rand.NewSource(99)), events)

	// Fire at every cell: each turn must land on a fresh one.
	for i := range Size * Size {
		if _, err := a.TakeTurn(context.Background(), opponent); err != nil {
			t.Fatalf("TakeTurn() #%d failed: %v", i, err)
		}
	}

	if len(opponent.Shots()) != Size*Size {
		t.Errorf("opponent has %d shots, expected %d", len(opponent.Shots()), Size*Size)
	}
	rejected := events.count(func(ev Event) bool { _, ok := ev.(ShotRejectedEvent); return ok })
	if rejected != 0 {
		t.Errorf("automated side had %d rejected shots, expected 0", rejected)
	}
}

func TestCombatantGrids(t *testing.T) {
	own, opponent := NewGrid(false), NewGrid(true)
	h := NewHuman(own, opponent, &scriptedInput{}, nil)
	a := NewAutomated(opponent, own, rand.New(rand.NewSource(1)), nil)

	if h.Own() != own || h.Opponent() != opponent || h.Side() != SideHuman {
		t.Error("human combatant wired to the wrong grids or side")
	}
	if a.Own() != opponent || a.Opponent() != own || a.Side() != SideAutomated {
		t.Error("automated combatant wired to the wrong grids or side")
	}
}
