package usecase

import (
	"context"
	"io"
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/clock"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/idempotency"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/uid"
	"github.com/caredent/caredent/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type AppointmentBookedEvent struct {
	AppointmentID int64
	PatientID     int64
	PatientName   string
	PatientEmail  string
	DentistName   string
	ScheduledAt   time.Time
}

type repoMessaging interface {
	PublishAppointmentBooked(ctx context.Context, msg AppointmentBookedEvent) error
}

type repoDB interface {
	ListPatients(ctx context.Context, filter entity.PatientListFilter) ([]entity.Patient, int64, error)
	GetPatientByID(ctx context.Context, id int64) (*entity.Patient, error)
	CreatePatient(ctx context.Context, p entity.Patient) error
	UpdatePatient(ctx context.Context, p entity.Patient) (int64, error)
	DeletePatient(ctx context.Context, id int64) (int64, error)

	ListAppointmentsByPatient(ctx context.Context, patientID int64) ([]entity.Appointment, error)
	CreateAppointment(ctx context.Context, a entity.Appointment) error
	GetAppointmentByID(ctx context.Context, id int64) (*entity.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id int64, from, to entity.AppointmentStatus) (int64, error)

	GetDentalRecord(ctx context.Context, patientID, recordID int64) (*entity.DentalRecord, error)
	UpdateRecordAttachment(ctx context.Context, recordID int64, key string) error
}

// fileStore persists dental record attachments in object storage.
type fileStore interface {
	SaveAttachment(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	AttachmentURL(ctx context.Context, key string) (string, error)
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	fileStore     fileStore
	idemp         idempotency.Idempotency
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	FileStore     fileStore
	Idempotency   idempotency.Idempotency
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		fileStore:     dep.FileStore,
		idemp:         dep.Idempotency,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("clinic.usecase").Start(ctx, name)
}
