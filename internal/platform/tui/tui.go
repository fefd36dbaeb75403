// Package tui provides the Bubble Tea frontend: both boards side by side,
// a message log, and a text input for coordinates.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
	"github.com/vovakirdan/seabattle/internal/platform/console"
	"github.com/vovakirdan/seabattle/internal/registry"
)

// ID is the registry ID of the terminal UI frontend.
const ID = "tui"

func init() {
	registry.Register(ID, func() registry.Frontend {
		return Frontend{}
	})
}

// Frontend plays a match in a full-screen terminal UI.
type Frontend struct{}

// ID returns the frontend identifier.
func (Frontend) ID() string { return ID }

// Title returns the display name.
func (Frontend) Title() string { return "Terminal UI (boards side by side)" }

// Play runs the match on its own goroutine and the Bubble Tea program on the
// calling one. Events reach the program through Program.Send; quitting the
// program cancels the match.
func (Frontend) Play(ctx context.Context, env registry.Env) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := console.NewLines()
	p := tea.NewProgram(
		NewModel(ctx, cancel, lines, DefaultTheme()),
		tea.WithAltScreen(),
		tea.WithInput(env.In),
		tea.WithOutput(env.Out),
	)

	forward := seabattle.ListenerFunc(func(ev seabattle.Event) {
		p.Send(EventMsg{Event: ev})
	})
	listeners := append([]seabattle.Listener{forward}, env.Listeners...)

	done := make(chan error, 1)
	go func() {
		m := seabattle.NewMatch(lines, env.Options, listeners...)
		err := m.Run(ctx)
		p.Send(MatchDoneMsg{Err: err})
		done <- err
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-done
		return fmt.Errorf("tui: %w", err)
	}
	cancel()
	return <-done
}
