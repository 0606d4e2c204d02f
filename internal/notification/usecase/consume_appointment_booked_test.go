package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/mail"
	"github.com/caredent/caredent/internal/pkg/validator"
)

type memMailer struct {
	sent     []mail.Message
	failures int
}

func (m *memMailer) Send(_ context.Context, msg mail.Message) error {
	if m.failures > 0 {
		m.failures--
		return errors.New("smtp temporary failure")
	}
	m.sent = append(m.sent, msg)

	return nil
}

func newTestNotificationUsecase(t *testing.T, mailer *memMailer) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("mail:\n  from: no-reply@clinic.test\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	return New(Dependency{
		Mailer:     mailer,
		Validator:  v,
		Config:     cfg,
		Instrument: instrument.NewNoop(),
	})
}

func validBooking() ConsumeAppointmentBookedInput {
	return ConsumeAppointmentBookedInput{
		AppointmentID: 1,
		PatientID:     100,
		PatientName:   "Jane Doe",
		PatientEmail:  "jane@clinic.test",
		DentistName:   "drg. Smith",
		ScheduledAt:   time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestConsumeAppointmentBooked(t *testing.T) {
	mailer := &memMailer{}
	uc := newTestNotificationUsecase(t, mailer)

	if err := uc.ConsumeAppointmentBooked(context.Background(), validBooking()); err != nil {
		t.Fatalf("ConsumeAppointmentBooked() error = %v", err)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("sent = %d, want 1", len(mailer.sent))
	}
	msg := mailer.sent[0]
	if msg.From != "no-reply@clinic.test" {
		t.Errorf("From = %q, want %q", msg.From, "no-reply@clinic.test")
	}
	if len(msg.To) != 1 || msg.To[0] != "jane@clinic.test" {
		t.Errorf("To = %v, want [jane@clinic.test]", msg.To)
	}
	if msg.Subject != "Your appointment is booked" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Jane Doe") || !strings.Contains(msg.TextBody, "drg. Smith") {
		t.Errorf("TextBody missing names: %q", msg.TextBody)
	}
}

func TestConsumeAppointmentBookedRetries(t *testing.T) {
	mailer := &memMailer{failures: 1}
	uc := newTestNotificationUsecase(t, mailer)

	if err := uc.ConsumeAppointmentBooked(context.Background(), validBooking()); err != nil {
		t.Fatalf("ConsumeAppointmentBooked() error = %v, want retry to succeed", err)
	}

	if len(mailer.sent) != 1 {
		t.Errorf("sent = %d, want 1 after retry", len(mailer.sent))
	}
}

func TestConsumeAppointmentBookedDropsInvalidPayload(t *testing.T) {
	mailer := &memMailer{}
	uc := newTestNotificationUsecase(t, mailer)

	in := validBooking()
	in.PatientEmail = "not-an-email"

	// Invalid payloads are dropped, not redelivered.
	if err := uc.ConsumeAppointmentBooked(context.Background(), in); err != nil {
		t.Fatalf("ConsumeAppointmentBooked() error = %v, want nil for invalid payload", err)
	}

	if len(mailer.sent) != 0 {
		t.Errorf("sent = %d, want 0 for invalid payload", len(mailer.sent))
	}
}
