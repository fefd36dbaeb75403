package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/seabattle/internal/games/seabattle"
)

// cellStyle picks the style for one rendered cell symbol.
func (t Theme) cellStyle(r rune) lipgloss.Style {
	switch r {
	case seabattle.SymbolEmpty:
		return t.Water
	case seabattle.SymbolHit:
		return t.Hit
	case seabattle.SymbolMiss:
		return t.Miss
	default:
		return t.Ship
	}
}

// RenderBoard draws a view in the same layout as seabattle.View.String, with
// every cell coloured by its symbol.
func RenderBoard(v seabattle.View, t Theme) string {
	var sb strings.Builder

	header, _, _ := strings.Cut(v.String(), "\n")
	sb.WriteString(t.Grid.Render(header))

	for y := range seabattle.Size {
		sb.WriteRune('\n')
		sb.WriteString(t.Grid.Render(fmt.Sprintf("%d |", y+1)))
		for x := range seabattle.Size {
			r := v.Cells[y][x]
			sb.WriteRune(' ')
			sb.WriteString(t.cellStyle(r).Render(string(r)))
			sb.WriteString(t.Grid.Render(" |"))
		}
	}
	return sb.String()
}

// renderBoards lays out both boards side by side with their titles.
func renderBoards(ev seabattle.BoardsEvent, t Theme) string {
	human := lipgloss.JoinVertical(lipgloss.Left,
		t.BoardTitle.Render(fmt.Sprintf("Your fleet (%d afloat)", ev.HumanAfloat)),
		RenderBoard(ev.Human, t),
	)
	automated := lipgloss.JoinVertical(lipgloss.Left,
		t.BoardTitle.Render(fmt.Sprintf("Opponent (%d afloat)", ev.AutomatedAfloat)),
		RenderBoard(ev.Automated, t),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top,
		t.BoardFrame.Render(human),
		"  ",
		t.BoardFrame.Render(automated),
	)
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}
