package seabattle

import (
	"fmt"
	"strings"
)

// Size is the width and height of every grid.
const Size = 6

// MaxVesselLength is the longest vessel a grid accepts.
const MaxVesselLength = 3

// DefaultShipGlyph marks a visible, unhit vessel cell.
const DefaultShipGlyph = '■'

// CellState is the state of a single grid cell. Transitions are monotone:
// Empty -> Occupied|Buffer on placement, Occupied -> Hit and Empty|Buffer -> Miss
// on a shot. Nothing ever returns to Empty.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
	CellBuffer
	CellHit
	CellMiss
)

// String returns the string representation of a cell state.
func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellOccupied:
		return "occupied"
	case CellBuffer:
		return "buffer"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// ShotResult is the outcome of an accepted shot.
type ShotResult struct {
	Coord Coord
	Hit   bool
	Sunk  bool // Only meaningful when Hit is true
}

// Grid is one side's playing surface: cell states, the vessels placed on it
// and the history of shots fired at it.
type Grid struct {
	cells   [Size][Size]CellState // [y-1][x-1]
	vessels []*Vessel
	shots   []Coord
	fired   map[Coord]struct{}
	hidden  bool
}

// NewGrid creates an empty grid. A hidden grid masks its vessels when
// viewed; the flag has no effect on placement or shots.
func NewGrid(hidden bool) *Grid {
	return &Grid{
		fired:  make(map[Coord]struct{}, Size*Size),
		hidden: hidden,
	}
}

// InBounds returns true if the coordinate lies in [1,Size]x[1,Size].
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 1 && c.X <= Size && c.Y >= 1 && c.Y <= Size
}

// State returns the state of the cell at c, or CellEmpty when out of bounds.
func (g *Grid) State(c Coord) CellState {
	if !g.InBounds(c) {
		return CellEmpty
	}
	return g.cells[c.Y-1][c.X-1]
}

func (g *Grid) set(c Coord, s CellState) {
	g.cells[c.Y-1][c.X-1] = s
}

// Hidden reports whether vessels are masked when the grid is viewed.
func (g *Grid) Hidden() bool {
	return g.hidden
}

// Vessels returns the placed vessels in placement order.
func (g *Grid) Vessels() []*Vessel {
	out := make([]*Vessel, len(g.vessels))
	copy(out, g.vessels)
	return out
}

// Afloat returns the number of placed vessels that are not sunk.
func (g *Grid) Afloat() int {
	n := 0
	for _, v := range g.vessels {
		if !v.IsSunk() {
			n++
		}
	}
	return n
}

// Shots returns the shot history in the order shots were fired.
func (g *Grid) Shots() []Coord {
	out := make([]Coord, len(g.shots))
	copy(out, g.shots)
	return out
}

// WasFiredAt reports whether c is already in the shot history.
func (g *Grid) WasFiredAt(c Coord) bool {
	_, ok := g.fired[c]
	return ok
}

// Place adds a vessel to the grid. Every cell is validated before anything is
// mutated, so a failed placement leaves the grid untouched. On success the
// cells become Occupied and the empty cells around them become Buffer.
func (g *Grid) Place(v *Vessel) error {
	if v.Length() < 1 || v.Length() > MaxVesselLength {
		return placementErr(CodeInvalidLength, v.Bow(),
			"vessel length %d outside 1..%d", v.Length(), MaxVesselLength)
	}

	cells := v.Cells()
	for _, c := range cells {
		if !g.InBounds(c) {
			return placementErr(CodeOutOfBounds, c, "cell %s is outside the board", c)
		}
		switch g.State(c) {
		case CellOccupied:
			return placementErr(CodeOverlap, c, "cell %s is already occupied", c)
		case CellBuffer:
			return placementErr(CodeAdjacent, c, "cell %s touches another vessel", c)
		case CellHit, CellMiss:
			return placementErr(CodeFired, c, "cell %s was already fired at", c)
		}
	}

	for _, c := range cells {
		g.set(c, CellOccupied)
	}
	g.markBuffer(v, cells)
	g.vessels = append(g.vessels, v)
	return nil
}

// markBuffer marks every empty in-bounds cell within Chebyshev distance 1 of
// the vessel as Buffer.
func (g *Grid) markBuffer(v *Vessel, cells []Coord) {
	for _, c := range cells {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				n := c.Add(dx, dy)
				if !g.InBounds(n) || v.Occupies(n) {
					continue
				}
				if g.State(n) == CellEmpty {
					g.set(n, CellBuffer)
				}
			}
		}
	}
}

// FireAt resolves a shot at c. Out-of-bounds and repeated coordinates are
// rejected with a *ShotError; otherwise the shot is recorded and exactly one
// cell changes state.
func (g *Grid) FireAt(c Coord) (ShotResult, error) {
	if !g.InBounds(c) {
		return ShotResult{}, &ShotError{Coord: c, Err: ErrOutOfBounds}
	}
	if g.WasFiredAt(c) {
		return ShotResult{}, &ShotError{Coord: c, Err: ErrDuplicateShot}
	}

	g.fired[c] = struct{}{}
	g.shots = append(g.shots, c)

	for _, v := range g.vessels {
		if !v.Occupies(c) {
			continue
		}
		if err := v.RegisterHit(); err != nil {
			return ShotResult{}, fmt.Errorf("seabattle: hit at %s: %w", c, err)
		}
		g.set(c, CellHit)
		return ShotResult{Coord: c, Hit: true, Sunk: v.IsSunk()}, nil
	}

	g.set(c, CellMiss)
	return ShotResult{Coord: c}, nil
}

// View is a display snapshot of a grid. It holds no references into the grid
// and can be handed to another goroutine.
type View struct {
	Cells [Size][Size]rune // [y-1][x-1]
}

// Display symbols.
const (
	SymbolEmpty = 'O'
	SymbolHit   = 'X'
	SymbolMiss  = 'T'
)

// View projects the grid into display symbols. Buffer cells look empty, and
// on a hidden grid so do vessel cells.
func (g *Grid) View(shipGlyph rune) View {
	var view View
	for y := range Size {
		for x := range Size {
			var r rune
			switch g.cells[y][x] {
			case CellOccupied:
				r = shipGlyph
				if g.hidden {
					r = SymbolEmpty
				}
			case CellHit:
				r = SymbolHit
			case CellMiss:
				r = SymbolMiss
			default:
				r = SymbolEmpty
			}
			view.Cells[y][x] = r
		}
	}
	return view
}

// Render returns the textual board using the default ship glyph.
func (g *Grid) Render() string {
	return g.View(DefaultShipGlyph).String()
}

// String formats the view as a header row of column numbers followed by one
// line per row prefixed with its row number.
func (v View) String() string {
	var sb strings.Builder
	sb.WriteString("  |")
	for x := 1; x <= Size; x++ {
		fmt.Fprintf(&sb, " %d |", x)
	}
	sb.WriteString("\n")
	for y := range Size {
		fmt.Fprintf(&sb, "%d |", y+1)
		for x := range Size {
			fmt.Fprintf(&sb, " %c |", v.Cells[y][x])
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
