package pricing

import "math"

const (
	// FreeRadiusMiles is how far the van travels before mileage is charged.
	FreeRadiusMiles = 10.0

	// DefaultRatePerMile applies when MILEAGE_RATE is not configured.
	DefaultRatePerMile = 0.45
)

// Quote is a priced booking: the service's base price plus a surcharge for
// distance beyond the free radius.
type Quote struct {
	ServicePrice  float64 `json:"servicePrice"`
	DistanceMiles float64 `json:"distanceMiles"`
	MileageCost   float64 `json:"mileageCost"`
	TotalCost     float64 `json:"totalCost"`
}

// Calculate prices a job at the given distance. A distance of 0 (used when
// geocoding failed) yields no mileage cost, so pricing never blocks a booking.
func Calculate(basePrice, distanceMiles, ratePerMile float64) Quote {
	chargeableMiles := math.Max(0, distanceMiles-FreeRadiusMiles)
	mileageCost := chargeableMiles * ratePerMile
	return Quote{
		ServicePrice:  basePrice,
		DistanceMiles: distanceMiles,
		MileageCost:   mileageCost,
		TotalCost:     basePrice + mileageCost,
	}
}
