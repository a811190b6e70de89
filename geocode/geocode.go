package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// ErrNotFound is returned when a postcode cannot be resolved, whether because
// the provider had no results or because the lookup itself failed.
var ErrNotFound = errors.New("postcode not found")

// Coordinates is a WGS84 point in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves a free-text postcode to coordinates.
type Geocoder interface {
	Lookup(ctx context.Context, postcode string) (Coordinates, error)
}

const googleEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

// GoogleGeocoder resolves postcodes through the Google Geocoding API,
// restricted to the UK region. One request per lookup, no retries.
type GoogleGeocoder struct {
	apiKey   string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

func NewGoogleGeocoder(apiKey string, logger *slog.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:   apiKey,
		endpoint: googleEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

func (g *GoogleGeocoder) Lookup(ctx context.Context, postcode string) (Coordinates, error) {
	q := url.Values{}
	q.Set("address", postcode)
	q.Set("region", "uk")
	q.Set("key", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("geocode lookup failed", "postcode", postcode, "error", err)
		return Coordinates{}, ErrNotFound
	}
	defer resp.Body.Close()

	var out struct {
		Results []struct {
			Geometry struct {
				Location Coordinates `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		g.logger.Warn("geocode response decode failed", "postcode", postcode, "error", err)
		return Coordinates{}, ErrNotFound
	}

	if len(out.Results) == 0 {
		return Coordinates{}, ErrNotFound
	}
	return out.Results[0].Geometry.Location, nil
}

// FallbackCoordinates is the stand-in location used when no API key is
// configured. It is central London, not a real geocode: every booking priced
// through it gets the same distance.
var FallbackCoordinates = Coordinates{Lat: 51.5074, Lng: -0.1278}

// FixedGeocoder answers every lookup with the same coordinate. It exists so
// the booking flow keeps working without a Google API key, at the cost of
// mis-priced mileage, and it says so loudly in the logs.
type FixedGeocoder struct {
	coords Coordinates
	logger *slog.Logger
}

func NewFixedGeocoder(coords Coordinates, logger *slog.Logger) *FixedGeocoder {
	logger.Warn("no geocoding API key configured; all postcodes resolve to a fixed stand-in location and mileage pricing will be wrong",
		"lat", coords.Lat, "lng", coords.Lng)
	return &FixedGeocoder{coords: coords, logger: logger}
}

func (f *FixedGeocoder) Lookup(ctx context.Context, postcode string) (Coordinates, error) {
	f.logger.Warn("geocode stand-in used", "postcode", postcode)
	return f.coords, nil
}
