package usecase

import (
	"context"
	"log/slog"

	"github.com/caredent/caredent/internal/pkg/goerror"
)

type PatientDeleteInput struct {
	ID int64 `validate:"required,gt=0"`
}

func (s *Usecase) PatientDelete(ctx context.Context, in PatientDeleteInput) error {
	ctx, span := s.startSpan(ctx, "PatientDelete")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	rows, err := s.repoDB.DeletePatient(ctx, in.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo delete patient", "patient_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if rows == 0 {
		return goerror.NewBusiness("Patient not found", goerror.CodeNotFound)
	}

	return nil
}
