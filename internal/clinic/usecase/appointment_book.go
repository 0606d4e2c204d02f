package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/idempotency"
)

type AppointmentBookInput struct {
	// IdempotencyKey guards retried booking requests; optional.
	IdempotencyKey string
	PatientID      int64     `validate:"required,gt=0"`
	DentistName    string    `validate:"required,max=150"`
	Reason         string    `validate:"max=500"`
	ScheduledAt    time.Time `validate:"required"`
}

type AppointmentBookOutput struct {
	ID int64
}

// AppointmentBook creates a scheduled appointment and announces it on the bus.
// With an idempotency key a retried request returns a conflict instead of a
// second booking.
func (s *Usecase) AppointmentBook(ctx context.Context, in AppointmentBookInput) (*AppointmentBookOutput, error) {
	ctx, span := s.startSpan(ctx, "AppointmentBook")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.ScheduledAt.Before(s.clock.Now()) {
		return nil, goerror.NewBusiness("Appointment time must be in the future", goerror.CodeInvalidInput)
	}

	out := &AppointmentBookOutput{}
	book := func(ctx context.Context) error {
		patient, err := s.repoDB.GetPatientByID(ctx, in.PatientID)
		if errors.Is(err, goerror.ErrNotFound) {
			return goerror.NewBusiness("Patient not found", goerror.CodeNotFound)
		}
		if err != nil {
			slog.ErrorContext(ctx, "failed to repo get patient", "patient_id", in.PatientID, "error", err)
			return goerror.NewServer(err)
		}

		appointment := entity.Appointment{
			ID:          s.uid.Generate(),
			PatientID:   patient.ID,
			DentistName: strings.TrimSpace(in.DentistName),
			Reason:      strings.TrimSpace(in.Reason),
			Status:      entity.AppointmentStatusScheduled,
			ScheduledAt: in.ScheduledAt,
		}

		if err := s.repoDB.CreateAppointment(ctx, appointment); err != nil {
			slog.ErrorContext(ctx, "failed to repo create appointment", "patient_id", patient.ID, "error", err)
			return goerror.NewServer(err)
		}

		// Confirmation delivery is asynchronous; a publish failure is logged
		// but does not undo the booking.
		if err := s.repoMessaging.PublishAppointmentBooked(ctx, AppointmentBookedEvent{
			AppointmentID: appointment.ID,
			PatientID:     patient.ID,
			PatientName:   patient.FullName,
			PatientEmail:  patient.Email,
			DentistName:   appointment.DentistName,
			ScheduledAt:   appointment.ScheduledAt,
		}); err != nil {
			slog.ErrorContext(ctx, "failed to publish appointment booked", "appointment_id", appointment.ID, "error", err)
		}

		out.ID = appointment.ID
		return nil
	}

	if in.IdempotencyKey == "" {
		if err := book(ctx); err != nil {
			return nil, err
		}
		return out, nil
	}

	stateTTL := s.cfg.GetSecond("modules.clinic.booking_idempotency_ttl_seconds")
	err := s.idemp.Exec(ctx, "clinic:booking:"+in.IdempotencyKey, book, idempotency.WithStateTTL(stateTTL))
	switch {
	case errors.Is(err, idempotency.ErrAlreadyInProgress),
		errors.Is(err, idempotency.ErrAlreadyCompleted):
		return nil, goerror.NewBusiness("Booking already processed", goerror.CodeConflict)
	case errors.Is(err, idempotency.ErrAlreadyFailed):
		return nil, goerror.NewBusiness("Booking previously failed, use a new idempotency key", goerror.CodeConflict)
	case err != nil:
		return nil, err
	}

	return out, nil
}
