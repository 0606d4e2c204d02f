package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type PatientGetInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) PatientGet(ctx context.Context, in PatientGetInput) (*entity.Patient, error) {
	ctx, span := s.startSpan(ctx, "PatientGet")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	patient, err := s.repoDB.GetPatientByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Patient not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get patient", "patient_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return patient, nil
}
