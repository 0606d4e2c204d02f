package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
)

type PatientListInput struct {
	Search string
	Page   int32 `validate:"gte=0"`
	Limit  int32 `validate:"gte=0,lte=100"`
}

type PatientListOutput struct {
	Patients []entity.Patient
	Total    int64
	Page     int32
	Limit    int32
}

func (s *Usecase) PatientList(ctx context.Context, in PatientListInput) (*PatientListOutput, error) {
	ctx, span := s.startSpan(ctx, "PatientList")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.Page < 1 {
		in.Page = 1
	}
	if in.Limit < 1 {
		in.Limit = 20
	}

	filter := entity.PatientListFilter{
		Search: strings.TrimSpace(in.Search),
		Page:   in.Page,
		Limit:  in.Limit,
	}

	patients, total, err := s.repoDB.ListPatients(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list patients", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &PatientListOutput{
		Patients: patients,
		Total:    total,
		Page:     in.Page,
		Limit:    in.Limit,
	}, nil
}
