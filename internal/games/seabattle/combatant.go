package seabattle

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"strings"
)

// Combatant selects targets and fires at an opponent grid.
type Combatant interface {
	// Side returns which side of the match this combatant plays.
	Side() Side

	// SelectTarget proposes the next coordinate to fire at. ok is false when
	// no candidate was produced and the caller should ask again.
	SelectTarget(ctx context.Context, opponent *Grid) (c Coord, ok bool, err error)

	// TakeTurn fires until one shot is accepted by the opponent grid and
	// returns its result. Rejected shots are reported and retried.
	TakeTurn(ctx context.Context, opponent *Grid) (ShotResult, error)
}

// LineSource supplies lines of human input. ReadLine blocks until a line is
// available, the source is exhausted, or ctx is done.
type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

// seat holds what every combatant shares: its grids and where to report.
type seat struct {
	side     Side
	own      *Grid
	opponent *Grid
	events   Listener
}

// Side returns which side of the match this combatant plays.
func (s *seat) Side() Side { return s.side }

// Own returns the combatant's own grid.
func (s *seat) Own() *Grid { return s.own }

// Opponent returns the grid this combatant fires at.
func (s *seat) Opponent() *Grid { return s.opponent }

func (s *seat) publish(ev Event) {
	if s.events != nil {
		s.events.OnEvent(ev)
	}
}

// takeTurn is the shared retry loop behind every TakeTurn. The only errors
// it returns come from ctx or the target selector; shot errors are reported
// and retried.
func takeTurn(ctx context.Context, c Combatant, s *seat, opponent *Grid) (ShotResult, error) {
	for {
		if err := ctx.Err(); err != nil {
			return ShotResult{}, err
		}

		target, ok, err := c.SelectTarget(ctx, opponent)
		if err != nil {
			return ShotResult{}, err
		}
		if !ok {
			continue
		}

		res, err := opponent.FireAt(target)
		switch {
		case err == nil:
			s.publish(ShotFiredEvent{Side: s.side, Result: res})
			return res, nil
		case errors.Is(err, ErrOutOfBounds), errors.Is(err, ErrDuplicateShot):
			s.publish(ShotRejectedEvent{Side: s.side, Coord: target, Err: err})
		default:
			return ShotResult{}, err
		}
	}
}

// Input rejection reasons.
const (
	ReasonTokenCount = "enter two coordinates"
	ReasonNotInteger = "coordinates must be integers"
)

// Human is a combatant driven by lines of text of the form "x y".
type Human struct {
	seat
	input LineSource
}

// NewHuman creates a human combatant reading from input.
func NewHuman(own, opponent *Grid, input LineSource, events Listener) *Human {
	return &Human{
		seat:  seat{side: SideHuman, own: own, opponent: opponent, events: events},
		input: input,
	}
}

// SelectTarget reads lines until one holds exactly two integers. The
// coordinate is returned unchecked; bounds are FireAt's job.
func (h *Human) SelectTarget(ctx context.Context, _ *Grid) (Coord, bool, error) {
	for {
		h.publish(PromptEvent{})
		line, err := h.input.ReadLine(ctx)
		if err != nil {
			return Coord{}, false, err
		}

		c, reason := parseTarget(line)
		if reason != "" {
			h.publish(InputRejectedEvent{Input: line, Reason: reason})
			continue
		}
		return c, true, nil
	}
}

// TakeTurn fires until one shot is accepted.
func (h *Human) TakeTurn(ctx context.Context, opponent *Grid) (ShotResult, error) {
	return takeTurn(ctx, h, &h.seat, opponent)
}

// parseTarget returns the coordinate in line, or a non-empty rejection reason.
func parseTarget(line string) (Coord, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Coord{}, ReasonTokenCount
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return Coord{}, ReasonNotInteger
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return Coord{}, ReasonNotInteger
	}
	return C(x, y), ""
}

// Automated is a combatant firing at uniformly random cells.
type Automated struct {
	seat
	rng *rand.Rand
}

// NewAutomated creates an automated combatant drawing from rng.
func NewAutomated(own, opponent *Grid, rng *rand.Rand, events Listener) *Automated {
	return &Automated{
		seat: seat{side: SideAutomated, own: own, opponent: opponent, events: events},
		rng:  rng,
	}
}

// SelectTarget draws one random cell. A cell already fired at is not a
// candidate.
func (a *Automated) SelectTarget(_ context.Context, opponent *Grid) (Coord, bool, error) {
	c := C(a.rng.Intn(Size)+1, a.rng.Intn(Size)+1)
	if opponent.WasFiredAt(c) {
		return Coord{}, false, nil
	}
	return c, true, nil
}

// TakeTurn fires until one shot is accepted. On a grid with no cells left
// this spins until ctx is done.
func (a *Automated) TakeTurn(ctx context.Context, opponent *Grid) (ShotResult, error) {
	return takeTurn(ctx, a, &a.seat, opponent)
}
