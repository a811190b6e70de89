package store

import (
	"context"
	"errors"
	"time"

	"detailpro-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

var _ Store = (*GormStore)(nil)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *GormStore) ServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &service, nil
}

func (s *GormStore) ActiveServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order asc").
		Find(&services).Error
	return services, err
}

func (s *GormStore) CreateService(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Create(service).Error
}

func (s *GormStore) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.WithContext(ctx).First(&customer, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &customer, nil
}

func (s *GormStore) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Create(customer).Error
}

func (s *GormStore) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	return s.db.WithContext(ctx).Save(customer).Error
}

func (s *GormStore) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *GormStore) BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		First(&booking, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &booking, nil
}

// SaveBooking updates the booking row only; preloaded Customer and Service
// associations are never written back.
func (s *GormStore) SaveBooking(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(booking).Error
}

func (s *GormStore) Bookings(ctx context.Context, limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	q := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Order("scheduled_date desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&bookings).Error
	return bookings, err
}

func (s *GormStore) AllBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).Find(&bookings).Error
	return bookings, err
}

func (s *GormStore) BookingsScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Where("scheduled_date >= ? AND scheduled_date < ?", from, to).
		Where("status IN ?", []string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&bookings).Error
	return bookings, err
}

func (s *GormStore) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order asc").
		Find(&products).Error
	return products, err
}

func (s *GormStore) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	var links []models.SocialLink
	err := s.db.WithContext(ctx).Order("display_order asc").Find(&links).Error
	return links, err
}
