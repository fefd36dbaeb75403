package seabattle

import (
	"context"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Options configures a match.
type Options struct {
	Seed           int64       // RNG seed for fleet seeding and the automated side
	SeedHumanFleet bool        // Also seed a random fleet on the human grid
	RequireFleet   bool        // Reseed a grid until its whole fleet fits
	ShipGlyph      rune        // Symbol for visible vessel cells, DefaultShipGlyph if zero
	Logger         *log.Logger // Diagnostics; discarded if nil
}

// Match owns both grids and both combatants and runs the turn loop.
type Match struct {
	id        string
	seed      int64
	glyph     rune
	round     int
	logger    *log.Logger
	events    fanout
	humanGrid *Grid
	autoGrid  *Grid
	human     *Human
	automated *Automated
}

// NewMatch creates a match reading human input from input. The automated
// grid is hidden and seeded with the fleet right away; the human grid is
// visible and only seeded when opts.SeedHumanFleet is set. By default a
// vessel that does not fit is dropped along with the rest of the fleet;
// opts.RequireFleet reseeds instead. Fleet events are published to listeners
// before NewMatch returns.
func NewMatch(input LineSource, opts Options, listeners ...Listener) *Match {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	glyph := opts.ShipGlyph
	if glyph == 0 {
		glyph = DefaultShipGlyph
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := &Match{
		id:     uuid.NewString()[:8],
		seed:   opts.Seed,
		glyph:  glyph,
		events: fanout(listeners),
	}
	m.logger = logger.With("match", m.id)

	m.autoGrid = m.seedSide(SideAutomated, true, true, opts.RequireFleet, rng)
	m.humanGrid = m.seedSide(SideHuman, false, opts.SeedHumanFleet, opts.RequireFleet, rng)

	m.human = NewHuman(m.humanGrid, m.autoGrid, input, m.events)
	m.automated = NewAutomated(m.autoGrid, m.humanGrid, rng, m.events)
	return m
}

// seedSide builds one side's grid, seeding its fleet when asked, and reports
// an incomplete fleet.
func (m *Match) seedSide(side Side, hidden, seed, require bool, rng *rand.Rand) *Grid {
	if !seed {
		return NewGrid(hidden)
	}

	var (
		g      *Grid
		placed int
	)
	if require {
		g, placed = SeedCompleteFleet(hidden, rng)
	} else {
		g = NewGrid(hidden)
		placed = SeedFleet(g, rng)
	}

	if placed < len(Fleet) {
		m.logger.Warn("could not place all vessels", "side", side, "placed", placed, "wanted", len(Fleet))
		m.events.OnEvent(FleetIncompleteEvent{Side: side, Placed: placed, Wanted: len(Fleet)})
		return g
	}
	m.logger.Debug("fleet seeded", "side", side, "vessels", placed)
	return g
}

// ID returns the short match identifier.
func (m *Match) ID() string { return m.id }

// Seed returns the RNG seed the match was created with.
func (m *Match) Seed() int64 { return m.seed }

// Rounds returns the number of rounds started so far.
func (m *Match) Rounds() int { return m.round }

// HumanGrid returns the human side's grid.
func (m *Match) HumanGrid() *Grid { return m.humanGrid }

// AutomatedGrid returns the automated side's grid.
func (m *Match) AutomatedGrid() *Grid { return m.autoGrid }

// Human returns the human combatant.
func (m *Match) Human() *Human { return m.human }

// Automated returns the automated combatant.
func (m *Match) Automated() *Automated { return m.automated }

// Round plays one iteration of the turn loop: show both boards, let the
// human fire, and on a miss let the automated side fire exactly once. A hit
// by the human ends the round so the next one starts with the human again;
// the automated side's result never grants it another shot.
func (m *Match) Round(ctx context.Context) error {
	m.round++
	m.events.OnEvent(BoardsEvent{
		Round:           m.round,
		Human:           m.humanGrid.View(m.glyph),
		Automated:       m.autoGrid.View(m.glyph),
		HumanAfloat:     m.humanGrid.Afloat(),
		AutomatedAfloat: m.autoGrid.Afloat(),
	})

	res, err := m.human.TakeTurn(ctx, m.autoGrid)
	if err != nil {
		return err
	}
	m.logger.Debug("shot", "side", SideHuman, "at", res.Coord, "hit", res.Hit, "sunk", res.Sunk)
	if res.Hit {
		return nil
	}

	m.events.OnEvent(TurnPassedEvent{To: SideAutomated})
	res, err = m.automated.TakeTurn(ctx, m.humanGrid)
	if err != nil {
		return err
	}
	m.logger.Debug("shot", "side", SideAutomated, "at", res.Coord, "hit", res.Hit, "sunk", res.Sunk)
	return nil
}

// Run plays rounds until ctx is done or the input source fails. There is no
// victory condition: a match only ends from outside. The returned error is
// never nil.
func (m *Match) Run(ctx context.Context) error {
	m.events.OnEvent(MatchStartedEvent{MatchID: m.id, Seed: m.seed})
	m.logger.Info("match started", "seed", m.seed)

	var err error
	for err == nil {
		err = m.Round(ctx)
	}

	m.logger.Info("match ended", "rounds", m.round, "reason", err)
	m.events.OnEvent(MatchEndedEvent{MatchID: m.id, Rounds: m.round, Err: err})
	return err
}
