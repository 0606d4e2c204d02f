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

type PatientCreateInput struct {
	FullName  string    `validate:"required,max=150"`
	Email     string    `validate:"required,email"`
	Phone     string    `validate:"required,phone"`
	BirthDate time.Time `validate:"required"`
	Address   string    `validate:"max=500"`
	Notes     string    `validate:"max=2000"`
}

type PatientCreateOutput struct {
	ID int64
}

func (s *Usecase) PatientCreate(ctx context.Context, in PatientCreateInput) (*PatientCreateOutput, error) {
	ctx, span := s.startSpan(ctx, "PatientCreate")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	patient := entity.Patient{
		ID:        s.uid.Generate(),
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(strings.ToLower(in.Email)),
		Phone:     strings.TrimSpace(in.Phone),
		BirthDate: in.BirthDate,
		Address:   strings.TrimSpace(in.Address),
		Notes:     strings.TrimSpace(in.Notes),
	}

	if err := s.repoDB.CreatePatient(ctx, patient); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "patient already registered", "email", patient.Email)
			return nil, goerror.NewBusiness("Patient already registered", goerror.CodeConflict)
		}

		slog.ErrorContext(ctx, "failed to repo create patient", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PatientCreateOutput{ID: patient.ID}, nil
}
