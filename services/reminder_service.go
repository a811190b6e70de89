package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"detailpro-backend/models"
	"detailpro-backend/store"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ReminderService texts customers the day before their booking. It is
// entirely optional: the scheduler only starts when Twilio credentials are
// configured, and a failed send never touches booking data.
type ReminderService struct {
	store  store.Store
	client *twilio.RestClient
	from   string
	logger *slog.Logger
	cron   *cron.Cron
}

func NewReminderService(st store.Store, accountSID, authToken, fromNumber string, logger *slog.Logger) *ReminderService {
	return &ReminderService{
		store: st,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from:   fromNumber,
		logger: logger,
	}
}

// StartScheduler sends reminders every day at 9 AM.
func (s *ReminderService) StartScheduler() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("0 9 * * *", func() {
		s.SendUpcomingBookingReminders(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule reminders: %w", err)
	}
	s.cron.Start()
	s.logger.Info("booking reminder scheduler started")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// SendUpcomingBookingReminders texts every customer with a pending or
// confirmed booking scheduled for tomorrow.
func (s *ReminderService) SendUpcomingBookingReminders(ctx context.Context) {
	now := time.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	dayAfter := tomorrow.AddDate(0, 0, 1)

	bookings, err := s.store.BookingsScheduledBetween(ctx, tomorrow, dayAfter)
	if err != nil {
		s.logger.Error("failed to load bookings for reminders", "error", err)
		return
	}

	for _, booking := range bookings {
		if booking.Customer == nil || booking.Customer.Phone == "" {
			continue
		}
		s.sendReminder(booking)
	}
	s.logger.Info("booking reminders processed", "count", len(bookings))
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	serviceName := "your detailing service"
	if booking.Service != nil {
		serviceName = booking.Service.Name
	}
	message := fmt.Sprintf("Hi %s, a reminder that %s is booked for tomorrow at %s at %s. Reply to this number with any questions.",
		booking.Customer.Name, serviceName, booking.ScheduledTime, booking.CustomerAddress)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(booking.Customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.logger.Error("failed to send booking reminder",
			"booking_id", booking.ID, "phone", booking.Customer.Phone, "error", err)
		return
	}
	if resp.Sid != nil {
		s.logger.Info("booking reminder sent", "booking_id", booking.ID, "sid", *resp.Sid)
	} else {
		s.logger.Info("booking reminder sent, no SID returned", "booking_id", booking.ID)
	}
}
