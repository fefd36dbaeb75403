package seabattle

// VesselSnapshot captures one vessel's placement and health.
type VesselSnapshot struct {
	Bow         Coord
	Length      int
	Orientation Orientation
	Health      int
}

// GridSnapshot captures the vessels and shot count of one grid.
type GridSnapshot struct {
	Vessels []VesselSnapshot
	Shots   int
	Afloat  int
}

// Snapshot captures the complete match state for determinism testing.
type Snapshot struct {
	Seed      int64
	Round     int
	Human     GridSnapshot
	Automated GridSnapshot
}

// Snapshot returns the current match snapshot.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Seed:      m.seed,
		Round:     m.round,
		Human:     snapshotGrid(m.humanGrid),
		Automated: snapshotGrid(m.autoGrid),
	}
}

func snapshotGrid(g *Grid) GridSnapshot {
	vessels := make([]VesselSnapshot, 0, len(g.vessels))
	for _, v := range g.vessels {
		vessels = append(vessels, VesselSnapshot{
			Bow:         v.Bow(),
			Length:      v.Length(),
			Orientation: v.Orientation(),
			Health:      v.Health(),
		})
	}
	return GridSnapshot{
		Vessels: vessels,
		Shots:   len(g.shots),
		Afloat:  g.Afloat(),
	}
}
