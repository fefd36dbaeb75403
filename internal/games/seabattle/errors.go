package seabattle

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by FireAt for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("shot is outside the board")

	// ErrDuplicateShot is returned by FireAt for a coordinate already fired at.
	ErrDuplicateShot = errors.New("cell was already fired at")

	// ErrPlacement matches every *PlacementError.
	ErrPlacement = errors.New("vessel cannot be placed")

	// ErrVesselSunk is returned by RegisterHit on a vessel with no health left.
	ErrVesselSunk = errors.New("vessel is already sunk")
)

// ShotError reports a rejected shot. It unwraps to ErrOutOfBounds or
// ErrDuplicateShot.
type ShotError struct {
	Coord Coord
	Err   error
}

func (e *ShotError) Error() string {
	return fmt.Sprintf("%s: %v", e.Coord, e.Err)
}

func (e *ShotError) Unwrap() error {
	return e.Err
}

// Placement failure codes.
const (
	CodeInvalidLength = "INVALID_LENGTH"
	CodeOutOfBounds   = "OUT_OF_BOUNDS"
	CodeOverlap       = "OVERLAP"
	CodeAdjacent      = "ADJACENT"
	CodeFired         = "FIRED"
)

// PlacementError contains details about a rejected placement.
type PlacementError struct {
	Code    string
	Coord   Coord
	Message string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Is makes errors.Is(err, ErrPlacement) true for any placement failure.
func (e *PlacementError) Is(target error) bool {
	return target == ErrPlacement
}

func placementErr(code string, c Coord, format string, args ...any) *PlacementError {
	return &PlacementError{
		Code:    code,
		Coord:   c,
		Message: fmt.Sprintf(format, args...),
	}
}
