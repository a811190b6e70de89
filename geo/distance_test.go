package geo

import (
	"math"
	"testing"
)

func TestHaversineZero(t *testing.T) {
	if d := Haversine(51.3148, -0.56, 51.3148, -0.56); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{51.3148, -0.56, 51.5074, -0.1278},
		{0, 0, 10, 10},
		{-33.8688, 151.2093, 40.7128, -74.006},
	}
	for _, p := range pairs {
		ab := Haversine(p[0], p[1], p[2], p[3])
		ba := Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("not symmetric: %f vs %f", ab, ba)
		}
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of longitude on the equator is ~69.09 miles.
	d := Haversine(0, 0, 0, 1)
	if math.Abs(d-69.09) > 0.1 {
		t.Fatalf("expected ~69.09 miles, got %f", d)
	}
}
