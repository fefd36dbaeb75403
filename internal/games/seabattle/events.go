package seabattle

// Side identifies one of the two combatants.
type Side int

const (
	SideHuman Side = iota
	SideAutomated
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideAutomated:
		return "automated"
	default:
		return "unknown"
	}
}

// Event is published by a match to its listeners.
type Event interface {
	matchEvent()
}

// Listener receives match events synchronously, on the goroutine running the
// match, in publication order.
type Listener interface {
	OnEvent(Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(ev).
func (f ListenerFunc) OnEvent(ev Event) { f(ev) }

// MatchStartedEvent is published once before the first round.
type MatchStartedEvent struct {
	MatchID string
	Seed    int64
}

func (MatchStartedEvent) matchEvent() {}

// FleetIncompleteEvent is published when fleet seeding gave up on a vessel.
type FleetIncompleteEvent struct {
	Side   Side
	Placed int
	Wanted int
}

func (FleetIncompleteEvent) matchEvent() {}

// BoardsEvent is published at the start of every round with fresh views of
// both grids.
type BoardsEvent struct {
	Round           int
	Human           View
	Automated       View
	HumanAfloat     int
	AutomatedAfloat int
}

func (BoardsEvent) matchEvent() {}

// PromptEvent is published before the human side reads a line of input.
type PromptEvent struct{}

func (PromptEvent) matchEvent() {}

// InputRejectedEvent is published when a line of human input cannot be parsed
// as two integers.
type InputRejectedEvent struct {
	Input  string
	Reason string
}

func (InputRejectedEvent) matchEvent() {}

// ShotRejectedEvent is published when FireAt refuses a shot. Err unwraps to
// ErrOutOfBounds or ErrDuplicateShot.
type ShotRejectedEvent struct {
	Side  Side
	Coord Coord
	Err   error
}

func (ShotRejectedEvent) matchEvent() {}

// ShotFiredEvent is published for every accepted shot.
type ShotFiredEvent struct {
	Side   Side
	Result ShotResult
}

func (ShotFiredEvent) matchEvent() {}

// TurnPassedEvent is published when play passes to the given side.
type TurnPassedEvent struct {
	To Side
}

func (TurnPassedEvent) matchEvent() {}

// MatchEndedEvent is published once when Run returns.
type MatchEndedEvent struct {
	MatchID string
	Rounds  int
	Err     error // Why the loop stopped (context or input error)
}

func (MatchEndedEvent) matchEvent() {}

// fanout delivers each event to every listener in order.
type fanout []Listener

func (f fanout) OnEvent(ev Event) {
	for _, l := range f {
		l.OnEvent(ev)
	}
}
