package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateBeyondFreeRadius(t *testing.T) {
	q := Calculate(80, 25, 0.45)

	if !almostEqual(q.MileageCost, 6.75) {
		t.Fatalf("expected mileage cost 6.75, got %f", q.MileageCost)
	}
	if !almostEqual(q.TotalCost, 86.75) {
		t.Fatalf("expected total 86.75, got %f", q.TotalCost)
	}
	if !almostEqual(q.ServicePrice, 80) {
		t.Fatalf("expected service price 80, got %f", q.ServicePrice)
	}
	if !almostEqual(q.TotalCost, q.ServicePrice+q.MileageCost) {
		t.Fatalf("total %f != service %f + mileage %f", q.TotalCost, q.ServicePrice, q.MileageCost)
	}
}

func TestCalculateWithinFreeRadius(t *testing.T) {
	for _, dist := range []float64{0, 3.2, 10} {
		q := Calculate(150, dist, 0.45)
		if q.MileageCost != 0 {
			t.Fatalf("distance %f: expected no mileage cost, got %f", dist, q.MileageCost)
		}
		if !almostEqual(q.TotalCost, 150) {
			t.Fatalf("distance %f: expected total 150, got %f", dist, q.TotalCost)
		}
	}
}

func TestCalculateUnknownDistance(t *testing.T) {
	// Geocoding failures are priced as distance 0.
	q := Calculate(70, 0, 1.25)
	if q.MileageCost != 0 || !almostEqual(q.TotalCost, 70) {
		t.Fatalf("unexpected quote: %+v", q)
	}
}
