package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caredent/caredent/internal/pkg/mail"
	"github.com/sethvargo/go-retry"
)

type ConsumeAppointmentBookedInput struct {
	AppointmentID int64     `validate:"required,gt=0"`
	PatientID     int64     `validate:"required,gt=0"`
	PatientName   string    `validate:"required"`
	PatientEmail  string    `validate:"required,email"`
	DentistName   string    `validate:"required"`
	ScheduledAt   time.Time `validate:"required"`
}

// ConsumeAppointmentBooked emails a booking confirmation to the patient.
// Transient SMTP failures are retried with backoff; a validation failure is
// dropped without redelivery since the payload will never become valid.
func (s *Usecase) ConsumeAppointmentBooked(ctx context.Context, in ConsumeAppointmentBookedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeAppointmentBooked")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid appointment booked payload", "error", err)
		return nil
	}

	msg := mail.Message{
		From:    s.cfg.GetString("mail.from"),
		To:      []string{in.PatientEmail},
		Subject: "Your appointment is booked",
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nYour appointment with %s is booked for %s.\n\nSee you soon,\nThe clinic team\n",
			in.PatientName, in.DentistName, in.ScheduledAt.Format("Monday, 2 January 2006 at 15:04"),
		),
	}

	b := retry.NewExponential(500 * time.Millisecond)
	b = retry.WithMaxRetries(5, b)
	b = retry.WithCappedDuration(10*time.Second, b)

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		if err := s.mailer.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send booking confirmation",
			"appointment_id", in.AppointmentID, "email", in.PatientEmail, "error", err)
		return err
	}

	slog.InfoContext(ctx, "booking confirmation sent",
		"appointment_id", in.AppointmentID, "email", in.PatientEmail)
	return nil
}
