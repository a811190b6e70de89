package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"detailpro-backend/geo"
	"detailpro-backend/geocode"
	"detailpro-backend/models"
	"detailpro-backend/observability"
	"detailpro-backend/pricing"
	"detailpro-backend/store"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrPostcodeNotFound = errors.New("invalid postcode")
)

// BookingService runs the booking flow: validate the service, geocode the
// customer's postcode, upsert the customer, price the job and persist one
// booking row with the price frozen.
type BookingService struct {
	store    store.Store
	geocoder geocode.Geocoder
	business geocode.Coordinates
	rate     float64
	logger   *slog.Logger
}

func NewBookingService(st store.Store, geocoder geocode.Geocoder, business geocode.Coordinates, ratePerMile float64, logger *slog.Logger) *BookingService {
	return &BookingService{
		store:    st,
		geocoder: geocoder,
		business: business,
		rate:     ratePerMile,
		logger:   logger,
	}
}

type CreateBookingInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Postcode string

	ServiceID uuid.UUID
	Date      time.Time
	Time      string
	Notes     string
}

// Create books a job. Geocoding failures are tolerated: the booking is priced
// at distance 0 rather than rejected. The customer upsert and booking insert
// are separate statements; a crash between them leaves an orphan customer row.
func (s *BookingService) Create(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	service, err := s.store.ServiceByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}

	coords, geocodeErr := s.geocoder.Lookup(ctx, input.Postcode)
	if geocodeErr != nil {
		observability.GeocodeLookups.WithLabelValues("not_found").Inc()
		s.logger.Warn("geocoding failed, booking will be priced without mileage",
			"postcode", input.Postcode, "error", geocodeErr)
	} else {
		observability.GeocodeLookups.WithLabelValues("ok").Inc()
	}

	customer, err := s.upsertCustomer(ctx, input, coords, geocodeErr == nil)
	if err != nil {
		return nil, fmt.Errorf("upsert customer: %w", err)
	}

	var distance float64
	if geocodeErr == nil {
		distance = geo.Haversine(s.business.Lat, s.business.Lng, coords.Lat, coords.Lng)
	}
	quote := pricing.Calculate(service.BasePrice, distance, s.rate)

	booking := &models.Booking{
		CustomerID:      customer.ID,
		ServiceID:       service.ID,
		ScheduledDate:   input.Date,
		ScheduledTime:   input.Time,
		Status:          models.BookingStatusPending,
		ServicePrice:    quote.ServicePrice,
		DistanceMiles:   quote.DistanceMiles,
		MileageCost:     quote.MileageCost,
		TotalCost:       quote.TotalCost,
		CustomerAddress: input.Address,
		CustomerLat:     coords.Lat,
		CustomerLng:     coords.Lng,
		Notes:           input.Notes,
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	booking.Customer = customer
	booking.Service = service

	s.logger.Info("booking created",
		"booking_id", booking.ID,
		"service", service.Name,
		"distance_miles", booking.DistanceMiles,
		"total_cost", booking.TotalCost)
	return booking, nil
}

func (s *BookingService) upsertCustomer(ctx context.Context, input CreateBookingInput, coords geocode.Coordinates, located bool) (*models.Customer, error) {
	customer, err := s.store.CustomerByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if customer == nil {
		customer = &models.Customer{Email: input.Email}
	}
	customer.Name = input.Name
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.Postcode = input.Postcode
	if located {
		lat, lng := coords.Lat, coords.Lng
		customer.Latitude = &lat
		customer.Longitude = &lng
	}

	if customer.ID == uuid.Nil {
		err = s.store.CreateCustomer(ctx, customer)
	} else {
		err = s.store.SaveCustomer(ctx, customer)
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

// Quote prices a service for a postcode without writing anything. Unlike
// Create, a failed geocode here is a client error.
func (s *BookingService) Quote(ctx context.Context, serviceID uuid.UUID, postcode string) (pricing.Quote, geocode.Coordinates, error) {
	service, err := s.store.ServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return pricing.Quote{}, geocode.Coordinates{}, ErrServiceNotFound
		}
		return pricing.Quote{}, geocode.Coordinates{}, fmt.Errorf("load service: %w", err)
	}

	coords, err := s.geocoder.Lookup(ctx, postcode)
	if err != nil {
		observability.GeocodeLookups.WithLabelValues("not_found").Inc()
		return pricing.Quote{}, geocode.Coordinates{}, ErrPostcodeNotFound
	}
	observability.GeocodeLookups.WithLabelValues("ok").Inc()

	distance := geo.Haversine(s.business.Lat, s.business.Lng, coords.Lat, coords.Lng)
	return pricing.Calculate(service.BasePrice, distance, s.rate), coords, nil
}
