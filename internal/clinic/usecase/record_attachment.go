package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/caredent/caredent/internal/pkg/goerror"
)

type RecordAttachmentInput struct {
	PatientID   int64  `validate:"required,gt=0"`
	RecordID    int64  `validate:"required,gt=0"`
	FileName    string `validate:"required,max=255"`
	ContentType string
	// Size may be -1 when the upload is streamed and the length is unknown.
	Size int64
	Body io.Reader
}

type RecordAttachmentOutput struct {
	URL string
}

// RecordAttachment streams an uploaded file to object storage and links it to
// the dental record. Re-uploading replaces the stored object under the same
// record-scoped key.
func (s *Usecase) RecordAttachment(ctx context.Context, in RecordAttachmentInput) (*RecordAttachmentOutput, error) {
	ctx, span := s.startSpan(ctx, "RecordAttachment")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}
	if in.Body == nil {
		return nil, goerror.NewInvalidFormat("Attachment file is required")
	}

	if _, err := s.repoDB.GetDentalRecord(ctx, in.PatientID, in.RecordID); err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Dental record not found", goerror.CodeNotFound)
		}

		slog.ErrorContext(ctx, "failed to repo get dental record", "record_id", in.RecordID, "error", err)
		return nil, goerror.NewServer(err)
	}

	key := fmt.Sprintf("records/%d/%d/%s", in.PatientID, in.RecordID, path.Base(in.FileName))
	if err := s.fileStore.SaveAttachment(ctx, key, in.Body, in.Size, in.ContentType); err != nil {
		slog.ErrorContext(ctx, "failed to store attachment", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateRecordAttachment(ctx, in.RecordID, key); err != nil {
		slog.ErrorContext(ctx, "failed to repo link attachment", "record_id", in.RecordID, "error", err)
		return nil, goerror.NewServer(err)
	}

	url, err := s.fileStore.AttachmentURL(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "failed to sign attachment url", "key", key, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RecordAttachmentOutput{URL: url}, nil
}
