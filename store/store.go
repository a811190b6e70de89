package store

import (
	"context"
	"errors"
	"time"

	"detailpro-backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

// Store is everything the HTTP layer and services need from persistence. The
// concrete handle is constructed in main and passed down; there is no
// package-level database state.
type Store interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error)
	ActiveServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error

	CustomerByEmail(ctx context.Context, email string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error
	SaveCustomer(ctx context.Context, customer *models.Customer) error
	AllCustomers(ctx context.Context) ([]models.Customer, error)

	CreateBooking(ctx context.Context, booking *models.Booking) error
	BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	SaveBooking(ctx context.Context, booking *models.Booking) error
	// Bookings returns bookings newest-scheduled first with customer and
	// service attached. limit <= 0 means no limit.
	Bookings(ctx context.Context, limit int) ([]models.Booking, error)
	AllBookings(ctx context.Context) ([]models.Booking, error)
	BookingsScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error)

	ActiveProducts(ctx context.Context) ([]models.Product, error)
	SocialLinks(ctx context.Context) ([]models.SocialLink, error)
}
