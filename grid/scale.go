package grid

import "math"

const (
	// BaseUnit is the half-width in data units of the grid at its smallest scale.
	BaseUnit = 10.0
	// Divisions is the number of gridlines on each side of an axis.
	Divisions = 10
	// MaxCoordinate is the largest scale representable as a float64 (10 * 2^1020).
	// Coordinates beyond it have no finite scale.
	MaxCoordinate = BaseUnit * 0x1p1020
)

// ScaleFactor returns the smallest BaseUnit * 2^k (k >= 0) that is at least
// max(|x|, |y|). The result is the half-width in data units the grid shows.
// It never exceeds MaxCoordinate.
func ScaleFactor(x, y float64) float64 {
	m := math.Max(math.Abs(x), math.Abs(y))
	s := BaseUnit
	for s < m && s < MaxCoordinate {
		s *= 2
	}
	return s
}

// TickStep is the data-unit distance between neighbouring gridlines at scale s.
func TickStep(s float64) float64 {
	return s / Divisions
}
