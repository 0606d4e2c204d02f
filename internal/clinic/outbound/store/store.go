package store

import (
	"context"
	"io"

	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Store keeps dental record attachments in object storage. The bucket and the
// signed URL lifetime come from configuration; keys are owned by the caller.
type Store struct {
	storage storage.Storage
	cfg     config.Config
	ins     instrument.Instrumentation
}

func NewStore(st storage.Storage, cfg config.Config, ins instrument.Instrumentation) *Store {
	return &Store{storage: st, cfg: cfg, ins: ins}
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("clinic.outbound.store").Start(ctx, name)
}

func (s *Store) SaveAttachment(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	ctx, span := s.startSpan(ctx, "SaveAttachment")
	defer span.End()

	bucket := s.cfg.GetString("storage.bucket")
	_, err := s.storage.PutObject(ctx, bucket, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (s *Store) AttachmentURL(ctx context.Context, key string) (string, error) {
	ctx, span := s.startSpan(ctx, "AttachmentURL")
	defer span.End()

	bucket := s.cfg.GetString("storage.bucket")
	expiry := s.cfg.GetMinute("storage.presign_expiry_minutes")

	url, err := s.storage.PresignGet(ctx, bucket, key, expiry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return url, nil
}
