package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type AppointmentStatusInput struct {
	ID     int64  `validate:"required,gt=0"`
	Status string `validate:"required,oneof=confirmed completed cancelled"`
}

func (s *Usecase) AppointmentStatus(ctx context.Context, in AppointmentStatusInput) error {
	ctx, span := s.startSpan(ctx, "AppointmentStatus")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	next := entity.AppointmentStatusFromString(in.Status)

	appointment, err := s.repoDB.GetAppointmentByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("Appointment not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get appointment", "appointment_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if !appointment.Status.CanTransitionTo(next) {
		slog.WarnContext(ctx, "illegal appointment status change",
			"appointment_id", in.ID, "from", appointment.Status.String(), "to", next.String())
		return goerror.NewBusiness("Invalid status transition", goerror.CodeConflict)
	}

	// Guarded update: a concurrent transition away from the observed status
	// makes this a no-op and surfaces as a conflict.
	rows, err := s.repoDB.UpdateAppointmentStatus(ctx, in.ID, appointment.Status, next)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo update appointment status", "appointment_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if rows == 0 {
		return goerror.NewBusiness("Invalid status transition", goerror.CodeConflict)
	}

	return nil
}
