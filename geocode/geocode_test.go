package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func googleGeocoderFor(srv *httptest.Server) *GoogleGeocoder {
	return &GoogleGeocoder{
		apiKey:   "test-key",
		endpoint: srv.URL,
		client:   &http.Client{Timeout: time.Second},
		logger:   testLogger(),
	}
}

func TestGoogleGeocoderSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("region"); got != "uk" {
			t.Errorf("expected region=uk, got %q", got)
		}
		if got := r.URL.Query().Get("address"); got != "GU1 1AA" {
			t.Errorf("expected address=GU1 1AA, got %q", got)
		}
		w.Write([]byte(`{"status":"OK","results":[{"geometry":{"location":{"lat":51.24,"lng":-0.57}}},{"geometry":{"location":{"lat":1,"lng":1}}}]}`))
	}))
	defer srv.Close()

	coords, err := googleGeocoderFor(srv).Lookup(context.Background(), "GU1 1AA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// First result wins.
	if coords.Lat != 51.24 || coords.Lng != -0.57 {
		t.Fatalf("unexpected coordinates: %+v", coords)
	}
}

func TestGoogleGeocoderNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	if _, err := googleGeocoderFor(srv).Lookup(context.Background(), "ZZ99 9ZZ"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoogleGeocoderBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	if _, err := googleGeocoderFor(srv).Lookup(context.Background(), "GU1 1AA"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGoogleGeocoderTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	if _, err := googleGeocoderFor(srv).Lookup(context.Background(), "GU1 1AA"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFixedGeocoder(t *testing.T) {
	g := NewFixedGeocoder(FallbackCoordinates, testLogger())
	coords, err := g.Lookup(context.Background(), "anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coords.Lat != 51.5074 || coords.Lng != -0.1278 {
		t.Fatalf("expected London stand-in, got %+v", coords)
	}
}
