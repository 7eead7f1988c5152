package grid

// Region is the part of the Cartesian plane a point falls in.
type Region uint8

const (
	RegionOrigin Region = iota
	RegionFirstQuadrant
	RegionSecondQuadrant
	RegionThirdQuadrant
	RegionFourthQuadrant
	RegionYAxis
	RegionXAxis
)

// Regions lists every region in classification order.
var Regions = []Region{
	RegionFirstQuadrant,
	RegionSecondQuadrant,
	RegionThirdQuadrant,
	RegionFourthQuadrant,
	RegionYAxis,
	RegionXAxis,
	RegionOrigin,
}

func (r Region) String() string {
	switch r {
	case RegionFirstQuadrant:
		return "first quadrant"
	case RegionSecondQuadrant:
		return "second quadrant"
	case RegionThirdQuadrant:
		return "third quadrant"
	case RegionFourthQuadrant:
		return "fourth quadrant"
	case RegionYAxis:
		return "on Y-axis"
	case RegionXAxis:
		return "on X-axis"
	case RegionOrigin:
		return "at origin"
	default:
		return "unknown"
	}
}

// Classify reports which quadrant, axis, or the origin (x, y) lies on.
//
// Negative zero counts as zero. NaN coordinates fall through to RegionOrigin;
// callers are expected to reject them first.
func Classify(x, y float64) Region {
	switch {
	case x > 0 && y > 0:
		return RegionFirstQuadrant
	case x < 0 && y > 0:
		return RegionSecondQuadrant
	case x < 0 && y < 0:
		return RegionThirdQuadrant
	case x > 0 && y < 0:
		return RegionFourthQuadrant
	case x == 0 && y != 0:
		return RegionYAxis
	case y == 0 && x != 0:
		return RegionXAxis
	default:
		return RegionOrigin
	}
}
