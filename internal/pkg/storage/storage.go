package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrMissingSigner means the backend cannot mint signed URLs with its
// current credentials.
var ErrMissingSigner = errors.New("storage: signed url signer not configured")

// Storage is the object store surface the application uses for record
// attachments and similar binary payloads.
type Storage interface {
	io.Closer

	// PutObject uploads r under bucket/key.
	PutObject(ctx context.Context, bucket, key string, r io.Reader, opts PutOptions) (ObjectInfo, error)
	// GetObject opens the object for reading along with its metadata.
	GetObject(ctx context.Context, bucket, key string) (io.ReadCloser, ObjectInfo, error)
	// StatObject fetches metadata only.
	StatObject(ctx context.Context, bucket, key string) (ObjectInfo, error)
	// DeleteObject removes the object.
	DeleteObject(ctx context.Context, bucket, key string) error
	// PresignGet mints a time-limited download URL.
	PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error)
}

// PutOptions describes the upload. Size may be -1 when the length is not
// known ahead of time, for streamed bodies.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo is the backend-neutral view of a stored object.
type ObjectInfo struct {
	Bucket      string
	Key         string
	Size        int64
	ETag        string
	ContentType string
	Metadata    map[string]string
	// UpdatedAt is the last-modified time reported by the backend.
	UpdatedAt time.Time
}
