package grid

import (
	"math"
	"testing"
)

func TestClassifyExamples(t *testing.T) {
	cases := []struct {
		x, y float64
		want string
	}{
		{3, 5, "first quadrant"},
		{-2, 4, "second quadrant"},
		{-1, -1, "third quadrant"},
		{5, -5, "fourth quadrant"},
		{0, 7, "on Y-axis"},
		{9, 0, "on X-axis"},
		{0, 0, "at origin"},
		{math.Copysign(0, -1), 0, "at origin"},
		{math.Copysign(0, -1), -3, "on Y-axis"},
		{-0.5, math.Copysign(0, -1), "on X-axis"},
	}
	for _, tc := range cases {
		if got := Classify(tc.x, tc.y).String(); got != tc.want {
			t.Fatalf("Classify(%v, %v) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestClassifyExhaustive(t *testing.T) {
	vals := []float64{-1e300, -7.5, -1, -1e-9, 0, 1e-9, 1, 7.5, 1e300}
	for _, x := range vals {
		for _, y := range vals {
			r := Classify(x, y)

			matches := 0
			if x > 0 && y > 0 {
				matches++
				if r != RegionFirstQuadrant {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if x < 0 && y > 0 {
				matches++
				if r != RegionSecondQuadrant {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if x < 0 && y < 0 {
				matches++
				if r != RegionThirdQuadrant {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if x > 0 && y < 0 {
				matches++
				if r != RegionFourthQuadrant {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if x == 0 && y != 0 {
				matches++
				if r != RegionYAxis {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if y == 0 && x != 0 {
				matches++
				if r != RegionXAxis {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if x == 0 && y == 0 {
				matches++
				if r != RegionOrigin {
					t.Fatalf("(%v, %v) = %v", x, y, r)
				}
			}
			if matches != 1 {
				t.Fatalf("(%v, %v) matched %d regions", x, y, matches)
			}
		}
	}
}

func TestRegionLabelsDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, r := range Regions {
		s := r.String()
		if s == "unknown" || seen[s] {
			t.Fatalf("bad label %q for region %d", s, r)
		}
		seen[s] = true
	}
	if len(seen) != 7 {
		t.Fatalf("expected 7 labels, got %d", len(seen))
	}
}
