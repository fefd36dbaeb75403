package seabattle

import (
	"errors"
	"math/rand"
)

// Fleet lists the vessel lengths every side is seeded with.
var Fleet = []int{3, 2, 2, 1, 1, 1, 1}

// MaxPlacementTrials is how many random placements are tried per vessel.
const MaxPlacementTrials = 1000

// SeedFleet places the Fleet on g at random and returns how many vessels were
// placed. If a vessel cannot be placed within MaxPlacementTrials, seeding
// stops there: already placed vessels stay and the rest are skipped.
func SeedFleet(g *Grid, rng *rand.Rand) int {
	placed := 0
	for _, length := range Fleet {
		if !placeRandom(g, rng, length) {
			return placed
		}
		placed++
	}
	return placed
}

// placeRandom tries random bows and orientations until one fits.
func placeRandom(g *Grid, rng *rand.Rand, length int) bool {
	for range MaxPlacementTrials {
		o := Horizontal
		if rng.Intn(2) == 1 {
			o = Vertical
		}
		bow := C(rng.Intn(Size)+1, rng.Intn(Size)+1)

		err := g.Place(NewVessel(bow, length, o))
		if err == nil {
			return true
		}
		if !errors.Is(err, ErrPlacement) {
			return false
		}
	}
	return false
}

// MaxFleetAttempts bounds how many fresh grids SeedCompleteFleet tries.
const MaxFleetAttempts = 100

// SeedCompleteFleet seeds fresh grids until one holds the whole Fleet, and
// returns that grid and its vessel count. After MaxFleetAttempts failures the
// last attempt is returned as is.
func SeedCompleteFleet(hidden bool, rng *rand.Rand) (*Grid, int) {
	var (
		g      *Grid
		placed int
	)
	for range MaxFleetAttempts {
		g = NewGrid(hidden)
		placed = SeedFleet(g, rng)
		if placed == len(Fleet) {
			break
		}
	}
	return g, placed
}
