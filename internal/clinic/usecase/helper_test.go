package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/idempotency"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/validator"
)

type memClinicRepo struct {
	patients     map[int64]*entity.Patient
	appointments map[int64]*entity.Appointment
	records      map[int64]*entity.DentalRecord
	attachments  map[int64]string

	statusUpdateRows *int64
	failWith         error
}

func newMemClinicRepo() *memClinicRepo {
	return &memClinicRepo{
		patients:     map[int64]*entity.Patient{},
		appointments: map[int64]*entity.Appointment{},
		records:      map[int64]*entity.DentalRecord{},
		attachments:  map[int64]string{},
	}
}

func (r *memClinicRepo) ListPatients(_ context.Context, _ entity.PatientListFilter) ([]entity.Patient, int64, error) {
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	out := make([]entity.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		out = append(out, *p)
	}

	return out, int64(len(out)), nil
}

func (r *memClinicRepo) GetPatientByID(_ context.Context, id int64) (*entity.Patient, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	p, ok := r.patients[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return p, nil
}

func (r *memClinicRepo) CreatePatient(_ context.Context, p entity.Patient) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, existing := range r.patients {
		if existing.Email == p.Email {
			return goerror.ErrConflict
		}
	}
	r.patients[p.ID] = &p

	return nil
}

func (r *memClinicRepo) UpdatePatient(_ context.Context, p entity.Patient) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.patients[p.ID]; !ok {
		return 0, nil
	}
	r.patients[p.ID] = &p

	return 1, nil
}

func (r *memClinicRepo) DeletePatient(_ context.Context, id int64) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.patients[id]; !ok {
		return 0, nil
	}
	delete(r.patients, id)

	return 1, nil
}

func (r *memClinicRepo) ListAppointmentsByPatient(_ context.Context, patientID int64) ([]entity.Appointment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}

	return out, nil
}

func (r *memClinicRepo) CreateAppointment(_ context.Context, a entity.Appointment) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.appointments[a.ID] = &a

	return nil
}

func (r *memClinicRepo) GetAppointmentByID(_ context.Context, id int64) (*entity.Appointment, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	a, ok := r.appointments[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return a, nil
}

func (r *memClinicRepo) UpdateAppointmentStatus(_ context.Context, id int64, from, to entity.AppointmentStatus) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if r.statusUpdateRows != nil {
		return *r.statusUpdateRows, nil
	}
	a, ok := r.appointments[id]
	if !ok || a.Status != from {
		return 0, nil
	}
	a.Status = to

	return 1, nil
}

func (r *memClinicRepo) GetDentalRecord(_ context.Context, patientID, recordID int64) (*entity.DentalRecord, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	rec, ok := r.records[recordID]
	if !ok || rec.PatientID != patientID {
		return nil, goerror.ErrNotFound
	}

	return rec, nil
}

func (r *memClinicRepo) UpdateRecordAttachment(_ context.Context, recordID int64, key string) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.attachments[recordID] = key

	return nil
}

type memPublisher struct {
	events []AppointmentBookedEvent
	err    error
}

func (p *memPublisher) PublishAppointmentBooked(_ context.Context, msg AppointmentBookedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, msg)

	return nil
}

type memFileStore struct {
	objects map[string][]byte
	saveErr error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{objects: map[string][]byte{}}
}

func (s *memFileStore) SaveAttachment(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[key] = data

	return nil
}

func (s *memFileStore) AttachmentURL(_ context.Context, key string) (string, error) {
	return "https://files.test/" + key, nil
}

// memIdempotency runs the guarded function once per key and reports replays
// the way the redis-backed tracker does.
type memIdempotency struct {
	states map[string]idempotency.State
}

func newMemIdempotency() *memIdempotency {
	return &memIdempotency{states: map[string]idempotency.State{}}
}

func (m *memIdempotency) Acquire(_ context.Context, key string, _ time.Duration) (idempotency.State, error) {
	state, ok := m.states[key]
	if !ok {
		m.states[key] = idempotency.StateInProgress
		return idempotency.StateNone, nil
	}

	return state, nil
}

func (m *memIdempotency) MarkCompleted(_ context.Context, key string, _ time.Duration) error {
	m.states[key] = idempotency.StateCompleted
	return nil
}

func (m *memIdempotency) MarkFailed(_ context.Context, key string, _ time.Duration) error {
	m.states[key] = idempotency.StateFailed
	return nil
}

func (m *memIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	switch m.states[key] {
	case idempotency.StateInProgress:
		return idempotency.ErrAlreadyInProgress
	case idempotency.StateCompleted:
		return idempotency.ErrAlreadyCompleted
	case idempotency.StateFailed:
		return idempotency.ErrAlreadyFailed
	}

	if err := fn(ctx); err != nil {
		m.states[key] = idempotency.StateFailed
		return err
	}
	m.states[key] = idempotency.StateCompleted

	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type seqID struct{ next int64 }

func (s *seqID) Generate() int64 {
	s.next++
	return s.next
}

type clinicFixture struct {
	repo      *memClinicRepo
	publisher *memPublisher
	files     *memFileStore
	idemp     *memIdempotency
	now       time.Time
}

func newTestClinicUsecase(t *testing.T) (*Usecase, *clinicFixture) {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  clinic:\n    booking_idempotency_ttl_seconds: 86400\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	f := &clinicFixture{
		repo:      newMemClinicRepo(),
		publisher: &memPublisher{},
		files:     newMemFileStore(),
		idemp:     newMemIdempotency(),
		now:       time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
	}

	uc := New(Dependency{
		RepoDB:        f.repo,
		RepoMessaging: f.publisher,
		FileStore:     f.files,
		Idempotency:   f.idemp,
		Validator:     v,
		Config:        cfg,
		UID:           &seqID{},
		Clock:         fixedClock{now: f.now},
		Instrument:    instrument.NewNoop(),
	})

	return uc, f
}

func assertClinicError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var ge *goerror.Error
	if !errors.As(err, &ge) {
		t.Fatalf("error is not *goerror.Error: %v", err)
	}
	if ge.StatusCode() != status {
		t.Fatalf("StatusCode() = %d, want %d (err: %v)", ge.StatusCode(), status, err)
	}
	if msg != "" && ge.Msg() != msg {
		t.Fatalf("Msg() = %q, want %q", ge.Msg(), msg)
	}
}
