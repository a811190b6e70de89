package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"detailpro-backend/models"

	"github.com/google/uuid"
)

// Memory is an in-memory Store. It backs tests and local experiments; the
// production process always runs on GormStore.
type Memory struct {
	mu          sync.RWMutex
	services    map[uuid.UUID]models.Service
	customers   map[uuid.UUID]models.Customer
	bookings    map[uuid.UUID]models.Booking
	products    map[uuid.UUID]models.Product
	socialLinks map[uuid.UUID]models.SocialLink
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		services:    make(map[uuid.UUID]models.Service),
		customers:   make(map[uuid.UUID]models.Customer),
		bookings:    make(map[uuid.UUID]models.Booking),
		products:    make(map[uuid.UUID]models.Product),
		socialLinks: make(map[uuid.UUID]models.SocialLink),
	}
}

func (m *Memory) ServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (m *Memory) ActiveServices(ctx context.Context) ([]models.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Service
	for _, s := range m.services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *Memory) CreateService(ctx context.Context, service *models.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if service.ID == uuid.Nil {
		service.ID = uuid.New()
	}
	service.CreatedAt = time.Now()
	m.services[service.ID] = *service
	return nil
}

func (m *Memory) CustomerByEmail(ctx context.Context, email string) (*models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.customers {
		if strings.EqualFold(c.Email, email) {
			c := c
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	m.customers[customer.ID] = *customer
	return nil
}

func (m *Memory) SaveCustomer(ctx context.Context, customer *models.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	customer.UpdatedAt = time.Now()
	m.customers[customer.ID] = *customer
	return nil
}

func (m *Memory) AllCustomers(ctx context.Context) ([]models.Customer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory) CreateBooking(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	stored := *booking
	stored.Customer = nil
	stored.Service = nil
	m.bookings[booking.ID] = stored
	return nil
}

func (m *Memory) BookingByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	m.attach(&b)
	return &b, nil
}

func (m *Memory) SaveBooking(ctx context.Context, booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := *booking
	stored.Customer = nil
	stored.Service = nil
	m.bookings[booking.ID] = stored
	return nil
}

func (m *Memory) Bookings(ctx context.Context, limit int) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		m.attach(&b)
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledDate.After(out[j].ScheduledDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Memory) AllBookings(ctx context.Context) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *Memory) BookingsScheduledBetween(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Status != models.BookingStatusPending && b.Status != models.BookingStatusConfirmed {
			continue
		}
		if b.ScheduledDate.Before(from) || !b.ScheduledDate.Before(to) {
			continue
		}
		m.attach(&b)
		out = append(out, b)
	}
	return out, nil
}

func (m *Memory) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.Product
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *Memory) SocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.SocialLink, 0, len(m.socialLinks))
	for _, l := range m.socialLinks {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *Memory) AddProduct(product models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	m.products[product.ID] = product
}

func (m *Memory) AddSocialLink(link models.SocialLink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if link.ID == uuid.Nil {
		link.ID = uuid.New()
	}
	m.socialLinks[link.ID] = link
}

// attach fills Customer/Service the way the gorm store's preloads do.
// Callers must hold at least a read lock.
func (m *Memory) attach(b *models.Booking) {
	if c, ok := m.customers[b.CustomerID]; ok {
		c := c
		b.Customer = &c
	}
	if s, ok := m.services[b.ServiceID]; ok {
		s := s
		b.Service = &s
	}
}
