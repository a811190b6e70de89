package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"detailpro-backend/models"
	"detailpro-backend/services"
	"detailpro-backend/store"
	"detailpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	testAdminPassword = "letmein"
	testSessionSecret = "test-session-secret"
)

type adminFixture struct {
	store  *store.Memory
	router *gin.Engine
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.NewMemory()
	stats := services.NewStatsService(st)
	ac := NewAdminController(st, stats, testAdminPassword, testSessionSecret, time.Hour, testLogger())

	r := gin.New()
	admin := r.Group("/api/admin")
	admin.POST("/login", ac.Login)
	admin.POST("/logout", ac.Logout)
	admin.Use(utils.AdminAuthMiddleware(testSessionSecret))
	admin.GET("/bookings", ac.GetBookings)
	admin.PATCH("/bookings", ac.UpdateBooking)
	admin.GET("/stats", ac.GetStats)

	return adminFixture{store: st, router: r}
}

func (f adminFixture) login(t *testing.T) *http.Cookie {
	t.Helper()
	w := postJSON(f.router, "/api/admin/login", fmt.Sprintf(`{"password":%q}`, testAdminPassword))
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == utils.AdminSessionCookie {
			return c
		}
	}
	t.Fatal("login did not set session cookie")
	return nil
}

func (f adminFixture) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var rdr *bytes.Buffer
	if body != "" {
		rdr = bytes.NewBufferString(body)
	} else {
		rdr = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func (f adminFixture) seedBooking(t *testing.T, status string, total float64) *models.Booking {
	t.Helper()
	ctx := context.Background()

	customer := &models.Customer{Name: "Sam Patel", Email: uuid.NewString() + "@example.com", Phone: "+447700900456"}
	if err := f.store.CreateCustomer(ctx, customer); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	service := &models.Service{Name: "Full Valet " + uuid.NewString(), BasePrice: total, IsActive: true}
	if err := f.store.CreateService(ctx, service); err != nil {
		t.Fatalf("seed service: %v", err)
	}

	booking := &models.Booking{
		CustomerID:    customer.ID,
		ServiceID:     service.ID,
		ScheduledDate: time.Now().AddDate(0, 0, 3),
		ScheduledTime: "10:00",
		Status:        status,
		ServicePrice:  total,
		TotalCost:     total,
	}
	if err := f.store.CreateBooking(ctx, booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func TestAdminLogin(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		f := newAdminFixture(t)
		w := postJSON(f.router, "/api/admin/login", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAdminFixture(t)
		w := postJSON(f.router, "/api/admin/login", `{"password":"nope"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("correct password sets session cookie", func(t *testing.T) {
		f := newAdminFixture(t)
		cookie := f.login(t)
		if cookie.Value == "" {
			t.Fatal("empty session token")
		}
		if cookie.Value == testAdminPassword {
			t.Fatal("cookie must not carry the raw password")
		}
		if !cookie.HttpOnly {
			t.Fatal("session cookie should be HttpOnly")
		}
	})
}

func TestAdminRoutesRequireSession(t *testing.T) {
	f := newAdminFixture(t)
	for _, path := range []string{"/api/admin/bookings", "/api/admin/stats"} {
		w := f.do(http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without cookie: expected 401, got %d", path, w.Code)
		}
	}
}

func TestAdminGetBookings(t *testing.T) {
	f := newAdminFixture(t)
	cookie := f.login(t)
	f.seedBooking(t, models.BookingStatusPending, 80)
	f.seedBooking(t, models.BookingStatusCompleted, 120)

	t.Run("all", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/admin/bookings", "", cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Bookings []models.Booking `json:"bookings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Bookings) != 2 {
			t.Fatalf("expected 2 bookings, got %d", len(resp.Bookings))
		}
		if resp.Bookings[0].Customer == nil {
			t.Fatal("expected customer preloaded")
		}
	})

	t.Run("limited", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/admin/bookings?limit=1", "", cookie)
		var resp struct {
			Bookings []models.Booking `json:"bookings"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if len(resp.Bookings) != 1 {
			t.Fatalf("expected 1 booking, got %d", len(resp.Bookings))
		}
	})

	t.Run("bad limit", func(t *testing.T) {
		w := f.do(http.MethodGet, "/api/admin/bookings?limit=abc", "", cookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminUpdateBooking(t *testing.T) {
	t.Run("unknown booking", func(t *testing.T) {
		f := newAdminFixture(t)
		cookie := f.login(t)
		body := fmt.Sprintf(`{"bookingId":"%s","status":"confirmed"}`, uuid.New())
		w := f.do(http.MethodPatch, "/api/admin/bookings", body, cookie)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newAdminFixture(t)
		cookie := f.login(t)
		b := f.seedBooking(t, models.BookingStatusPending, 80)
		body := fmt.Sprintf(`{"bookingId":"%s","status":"cancelled"}`, b.ID)
		w := f.do(http.MethodPatch, "/api/admin/bookings", body, cookie)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("completion stamps completedAt once", func(t *testing.T) {
		f := newAdminFixture(t)
		cookie := f.login(t)
		b := f.seedBooking(t, models.BookingStatusPending, 80)

		body := fmt.Sprintf(`{"bookingId":"%s","status":"completed"}`, b.ID)
		w := f.do(http.MethodPatch, "/api/admin/bookings", body, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		updated, err := f.store.BookingByID(context.Background(), b.ID)
		if err != nil {
			t.Fatalf("reload booking: %v", err)
		}
		if updated.Status != models.BookingStatusCompleted {
			t.Fatalf("expected completed, got %q", updated.Status)
		}
		if updated.CompletedAt == nil {
			t.Fatal("expected completedAt to be set")
		}
		first := *updated.CompletedAt

		// Patching again must not move the completion timestamp.
		w = f.do(http.MethodPatch, "/api/admin/bookings", body, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		updated, _ = f.store.BookingByID(context.Background(), b.ID)
		if !updated.CompletedAt.Equal(first) {
			t.Fatalf("completedAt moved: %v -> %v", first, *updated.CompletedAt)
		}
	})

	t.Run("notes only leaves status alone", func(t *testing.T) {
		f := newAdminFixture(t)
		cookie := f.login(t)
		b := f.seedBooking(t, models.BookingStatusConfirmed, 80)

		body := fmt.Sprintf(`{"bookingId":"%s","internalNotes":"gate code 4821"}`, b.ID)
		w := f.do(http.MethodPatch, "/api/admin/bookings", body, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		updated, _ := f.store.BookingByID(context.Background(), b.ID)
		if updated.Status != models.BookingStatusConfirmed {
			t.Fatalf("status changed unexpectedly: %q", updated.Status)
		}
		if updated.InternalNotes != "gate code 4821" {
			t.Fatalf("unexpected notes: %q", updated.InternalNotes)
		}
	})
}

func TestAdminGetStats(t *testing.T) {
	f := newAdminFixture(t)
	cookie := f.login(t)
	f.seedBooking(t, models.BookingStatusPending, 80)
	f.seedBooking(t, models.BookingStatusCompleted, 120)

	w := f.do(http.MethodGet, "/api/admin/stats", "", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats services.Stats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.TotalBookings != 2 || stats.PendingBookings != 1 || stats.CompletedBookings != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	if stats.TotalRevenue != 120 {
		t.Fatalf("expected totalRevenue 120, got %v", stats.TotalRevenue)
	}
	if !strings.Contains(w.Body.String(), "monthlyRevenue") {
		t.Fatalf("expected monthlyRevenue field in %s", w.Body.String())
	}
}
