package grid

import (
	"math"
	"testing"
)

func TestScaleFactorExamples(t *testing.T) {
	cases := []struct {
		x, y float64
		want float64
	}{
		{3, 5, 10},
		{15, 2, 20},
		{45, 0, 80},
		{0, 0, 10},
		{-45, 10, 80},
		{10, -10, 10},
		{0, -10.5, 20},
		{160, 0, 160},
		{160.001, 0, 320},
	}
	for _, tc := range cases {
		if got := ScaleFactor(tc.x, tc.y); got != tc.want {
			t.Fatalf("ScaleFactor(%v, %v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestScaleFactorIsSmallestBound(t *testing.T) {
	for _, m := range []float64{0, 0.1, 9.99, 10, 10.01, 33, 99, 1000, 12345.6, 1e12} {
		for _, p := range [][2]float64{{m, 0}, {0, -m}, {-m, m / 2}} {
			s := ScaleFactor(p[0], p[1])

			k := math.Log2(s / BaseUnit)
			if k != math.Trunc(k) || k < 0 {
				t.Fatalf("ScaleFactor(%v) = %v is not 10*2^k", p, s)
			}
			if s < m {
				t.Fatalf("ScaleFactor(%v) = %v < %v", p, s, m)
			}
			if s > BaseUnit && s/2 >= m {
				t.Fatalf("ScaleFactor(%v) = %v is not the smallest bound", p, s)
			}
		}
	}
}

func TestScaleFactorStaysFinite(t *testing.T) {
	for _, m := range []float64{MaxCoordinate / 2, MaxCoordinate, 1.5e308, math.MaxFloat64} {
		s := ScaleFactor(m, 1)
		if math.IsInf(s, 0) || s > MaxCoordinate {
			t.Fatalf("ScaleFactor(%v, 1) = %v, want at most %v", m, s, MaxCoordinate)
		}
	}
	if got := ScaleFactor(MaxCoordinate, 0); got != MaxCoordinate {
		t.Fatalf("ScaleFactor(MaxCoordinate, 0) = %v", got)
	}
	if got := ScaleFactor(MaxCoordinate/2+1e300, 0); got != MaxCoordinate {
		t.Fatalf("ScaleFactor just above half the limit = %v", got)
	}
}

func TestTickStep(t *testing.T) {
	if got := TickStep(20); got != 2 {
		t.Fatalf("TickStep(20) = %v", got)
	}
}
