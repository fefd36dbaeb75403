package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/registry"
)

func TestReadLines(t *testing.T) {
	l := ReadLines(context.Background(), strings.NewReader("1 2\n\n3 4"))

	for _, want := range []string{"1 2", "", "3 4"} {
		got, err := l.ReadLine(context.Background())
		if err != nil {
			t.Fatalf("ReadLine() failed: %v", err)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, expected %q", got, want)
		}
	}

	if _, err := l.ReadLine(context.Background()); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end = %v, expected io.EOF", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReadLinesReaderError(t *testing.T) {
	l := ReadLines(context.Background(), failingReader{})

	_, err := l.ReadLine(context.Background())
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() = %v, expected the reader's error", err)
	}
}

func TestReadLineCancelled(t *testing.T) {
	// A pipe nobody writes to blocks the scanner forever.
	r, w := io.Pipe()
	defer w.Close()
	l := ReadLines(context.Background(), r)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := l.ReadLine(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("ReadLine() = %v, expected context.DeadlineExceeded", err)
	}
}

func TestLinesCloseWithError(t *testing.T) {
	l := NewLines()
	boom := errors.New("boom")
	l.CloseWithError(boom)
	l.CloseWithError(nil) // ignored

	if _, err := l.ReadLine(context.Background()); !errors.Is(err, boom) {
		t.Errorf("ReadLine() = %v, expected boom", err)
	}
	if err := l.Send(context.Background(), "1 1"); !errors.Is(err, boom) {
		t.Errorf("Send() after close = %v, expected boom", err)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		ev   seabattle.Event
		want string
	}{
		{seabattle.MatchStartedEvent{MatchID: "ab12cd34", Seed: 5}, "Welcome to Sea Battle! Match ab12cd34, seed 5."},
		{seabattle.InputRejectedEvent{Input: "x", Reason: seabattle.ReasonTokenCount}, `Invalid input "x": enter two coordinates.`},
		{seabattle.ShotRejectedEvent{Coord: seabattle.C(7, 1), Err: fmt.Errorf("wrap: %w", seabattle.ErrOutOfBounds)}, "(7, 1) is outside the board!"},
		{seabattle.ShotRejectedEvent{Coord: seabattle.C(2, 2), Err: seabattle.ErrDuplicateShot}, "(2, 2) was already fired at!"},
		{seabattle.ShotFiredEvent{Side: seabattle.SideHuman, Result: seabattle.ShotResult{Coord: seabattle.C(1, 1)}}, "You fired at (1, 1): miss."},
		{seabattle.ShotFiredEvent{Side: seabattle.SideAutomated, Result: seabattle.ShotResult{Coord: seabattle.C(3, 4), Hit: true}}, "Opponent fired at (3, 4): hit!"},
		{seabattle.ShotFiredEvent{Side: seabattle.SideHuman, Result: seabattle.ShotResult{Coord: seabattle.C(6, 6), Hit: true, Sunk: true}}, "You fired at (6, 6): hit, ship sunk!"},
		{seabattle.TurnPassedEvent{To: seabattle.SideAutomated}, "Opponent's move!"},
		{seabattle.PromptEvent{}, ""},
		{seabattle.BoardsEvent{}, ""},
	}

	for _, tc := range tests {
		if got := Message(tc.ev); got != tc.want {
			t.Errorf("Message(%T) = %q, expected %q", tc.ev, got, tc.want)
		}
	}
}

func TestPlay(t *testing.T) {
	var out bytes.Buffer
	env := registry.Env{
		Options: seabattle.Options{Seed: 1},
		In:      strings.NewReader("1 1\nhello\n7 7\n"),
		Out:     &out,
	}

	err := Frontend{}.Play(context.Background(), env)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("Play() error = %v, expected io.EOF", err)
	}

	text := out.String()
	for _, want := range []string{
		"Welcome to Sea Battle!",
		"Your board (0 afloat):\n  | 1 | 2 | 3 | 4 | 5 | 6 |\n",
		"Opponent's board",
		Prompt,
		"You fired at (1, 1)",
		`Invalid input "hello"`,
		"(7, 7) is outside the board!",
		"ended after",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output lacks %q:\n%s", want, text)
		}
	}
	if strings.ContainsRune(text, seabattle.DefaultShipGlyph) {
		t.Error("output reveals the opponent's fleet")
	}
}

func TestPlayRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("frontend %q not registered", ID)
	}
	f, err := registry.Create(ID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if f.ID() != ID {
		t.Errorf("ID() = %q, expected %q", f.ID(), ID)
	}
}

func TestPlayForwardsListeners(t *testing.T) {
	var ended int
	env := registry.Env{
		Options: seabattle.Options{Seed: 2},
		Listeners: []seabattle.Listener{seabattle.ListenerFunc(func(ev seabattle.Event) {
			if _, ok := ev.(seabattle.MatchEndedEvent); ok {
				ended++
			}
		})},
		In:  strings.NewReader(""),
		Out: io.Discard,
	}

	if err := (Frontend{}).Play(context.Background(), env); !errors.Is(err, io.EOF) {
		t.Fatalf("Play() error = %v, expected io.EOF", err)
	}
	if ended != 1 {
		t.Errorf("extra listener saw %d MatchEndedEvents, expected 1", ended)
	}
}
