package seabattle

// Orientation is the direction a vessel extends from its bow.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the string representation of an orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Delta returns the (dx, dy) step between consecutive vessel cells.
func (o Orientation) Delta() (dx, dy int) {
	if o == Vertical {
		return 0, 1
	}
	return 1, 0
}

// Vessel is a linear fleet unit. Its occupied cells are derived from the bow,
// length and orientation; health starts at length and only ever decreases.
type Vessel struct {
	bow         Coord
	length      int
	orientation Orientation
	health      int
}

// NewVessel creates a vessel at full health.
func NewVessel(bow Coord, length int, o Orientation) *Vessel {
	return &Vessel{
		bow:         bow,
		length:      length,
		orientation: o,
		health:      length,
	}
}

// Bow returns the first occupied coordinate.
func (v *Vessel) Bow() Coord { return v.bow }

// Length returns the number of cells the vessel occupies.
func (v *Vessel) Length() int { return v.length }

// Orientation returns the vessel orientation.
func (v *Vessel) Orientation() Orientation { return v.orientation }

// Health returns the number of cells not yet hit.
func (v *Vessel) Health() int { return v.health }

// Cells returns the occupied coordinates, bow first.
func (v *Vessel) Cells() []Coord {
	dx, dy := v.orientation.Delta()
	cells := make([]Coord, 0, v.length)
	for i := range v.length {
		cells = append(cells, v.bow.Add(i*dx, i*dy))
	}
	return cells
}

// Occupies reports whether c is one of the vessel's cells.
func (v *Vessel) Occupies(c Coord) bool {
	dx, dy := v.orientation.Delta()
	for i := range v.length {
		if v.bow.Add(i*dx, i*dy) == c {
			return true
		}
	}
	return false
}

// RegisterHit takes one point of health. Health never goes below zero:
// hitting a sunk vessel returns ErrVesselSunk and changes nothing.
func (v *Vessel) RegisterHit() error {
	if v.health == 0 {
		return ErrVesselSunk
	}
	v.health--
	return nil
}

// IsSunk returns true once every cell has been hit.
func (v *Vessel) IsSunk() bool {
	return v.health == 0
}
