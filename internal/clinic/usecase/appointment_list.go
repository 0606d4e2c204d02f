package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type AppointmentListInput struct {
	PatientID int64 `validate:"required,gt=0"`
}

func (s *Usecase) AppointmentList(ctx context.Context, in AppointmentListInput) ([]entity.Appointment, error) {
	ctx, span := s.startSpan(ctx, "AppointmentList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if _, err := s.repoDB.GetPatientByID(ctx, in.PatientID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Patient not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get patient", "patient_id", in.PatientID, "error", err)
		return nil, goerror.NewServer(err)
	}

	appointments, err := s.repoDB.ListAppointmentsByPatient(ctx, in.PatientID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list appointments", "patient_id", in.PatientID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return appointments, nil
}
