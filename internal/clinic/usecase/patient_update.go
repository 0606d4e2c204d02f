package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type PatientUpdateInput struct {
	ID        int64     `validate:"required,gt=0"`
	FullName  string    `validate:"required,max=150"`
	Email     string    `validate:"required,email"`
	Phone     string    `validate:"required,phone"`
	BirthDate time.Time `validate:"required"`
	Address   string    `validate:"max=500"`
	Notes     string    `validate:"max=2000"`
}

func (s *Usecase) PatientUpdate(ctx context.Context, in PatientUpdateInput) error {
	ctx, span := s.startSpan(ctx, "PatientUpdate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	rows, err := s.repoDB.UpdatePatient(ctx, entity.Patient{
		ID:        in.ID,
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		BirthDate: in.BirthDate,
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
	})
	if err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			return goerror.NewBusiness("Patient already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo update patient", "patient_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	if rows == 0 {
		return goerror.NewBusiness("Patient not found", goerror.CodeNotFound)
	}

	return nil
}
