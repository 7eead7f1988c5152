package quadrant

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"quadgrid/grid"
)

// ErrInvalidNumeric reports a coordinate field that does not hold a finite number.
var ErrInvalidNumeric = errors.New("invalid numeric input")

// NumericErrorMessage is shown to the user when ErrInvalidNumeric is hit.
const NumericErrorMessage = "The input should be numeric!"

// ParseCoordinate parses one field. Surrounding blanks are ignored; empty,
// non-numeric, NaN, infinite and out-of-range (beyond grid.MaxCoordinate)
// values are rejected.
func ParseCoordinate(field, text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, fmt.Errorf("%s: empty: %w", field, ErrInvalidNumeric)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q: %w", field, s, ErrInvalidNumeric)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s: %q is not finite: %w", field, s, ErrInvalidNumeric)
	}
	if math.Abs(v) > grid.MaxCoordinate {
		return 0, fmt.Errorf("%s: %q is out of range: %w", field, s, ErrInvalidNumeric)
	}
	return v, nil
}

// ParsePoint parses the X and Y fields, reporting the first invalid one.
func ParsePoint(xText, yText string) (x, y float64, err error) {
	x, err = ParseCoordinate("x", xText)
	if err != nil {
		return 0, 0, err
	}
	y, err = ParseCoordinate("y", yText)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// ResultText is the line shown for a classified point.
func ResultText(label string) string {
	return "The point is in " + label
}
