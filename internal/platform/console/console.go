package console

import (
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/registry"
)

// ID is the registry ID of the console frontend.
const ID = "console"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays a match over plain text streams.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Console (plain text, any terminal or pipe)" }

// Play runs a match reading env.In and printing to env.Out.
func (Frontend) Play(ctx context.Context, env registry.Env) error {
	input := ReadLines(ctx, env.In)
	listeners := append([]seabattle.Listener{NewPrinter(env.Out)}, env.Listeners...)
	m := seabattle.NewMatch(input, env.Options, listeners...)
	return m.Run(ctx)
}

// Printer is a match listener writing boards and messages as text.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// OnEvent implements seabattle.Listener.
func (p *Printer) OnEvent(ev seabattle.Event) {
	switch e := ev.(type) {
	case seabattle.BoardsEvent:
		fmt.Fprintf(p.w, "\nYour board (%d afloat):\n%s", e.HumanAfloat, e.Human)
		fmt.Fprintf(p.w, "Opponent's board (%d afloat):\n%s", e.AutomatedAfloat, e.Automated)
	case seabattle.PromptEvent:
		fmt.Fprint(p.w, Prompt)
	default:
		if msg := Message(ev); msg != "" {
			fmt.Fprintln(p.w, msg)
		}
	}
}
