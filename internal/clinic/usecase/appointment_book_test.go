package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
)

func seedPatient(f *clinicFixture) *entity.Patient {
	p := &entity.Patient{
		ID:       100,
		FullName: "Jane Doe",
		Email:    "jane@clinic.test",
		Phone:    "+15550100",
	}
	f.repo.patients[p.ID] = p

	return p
}

func TestAppointmentBook(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	out, err := uc.AppointmentBook(context.Background(), AppointmentBookInput{
		PatientID:   patient.ID,
		DentistName: "drg. Smith",
		Reason:      "Routine checkup",
		ScheduledAt: f.now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("AppointmentBook() error = %v", err)
	}

	booked, ok := f.repo.appointments[out.ID]
	if !ok {
		t.Fatal("appointment was not persisted")
	}
	if booked.Status != entity.AppointmentStatusScheduled {
		t.Errorf("Status = %v, want scheduled", booked.Status)
	}

	if len(f.publisher.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(f.publisher.events))
	}
	event := f.publisher.events[0]
	if event.AppointmentID != out.ID {
		t.Errorf("event AppointmentID = %d, want %d", event.AppointmentID, out.ID)
	}
	if event.PatientEmail != "jane@clinic.test" {
		t.Errorf("event PatientEmail = %q, want %q", event.PatientEmail, "jane@clinic.test")
	}
}

func TestAppointmentBookPastTime(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	_, err := uc.AppointmentBook(context.Background(), AppointmentBookInput{
		PatientID:   patient.ID,
		DentistName: "drg. Smith",
		ScheduledAt: f.now.Add(-time.Hour),
	})
	assertClinicError(t, err, http.StatusBadRequest, "Appointment time must be in the future")
}

func TestAppointmentBookUnknownPatient(t *testing.T) {
	uc, f := newTestClinicUsecase(t)

	_, err := uc.AppointmentBook(context.Background(), AppointmentBookInput{
		PatientID:   999,
		DentistName: "drg. Smith",
		ScheduledAt: f.now.Add(24 * time.Hour),
	})
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")
}

func TestAppointmentBookPublishFailureKeepsBooking(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)
	f.publisher.err = context.DeadlineExceeded

	out, err := uc.AppointmentBook(context.Background(), AppointmentBookInput{
		PatientID:   patient.ID,
		DentistName: "drg. Smith",
		ScheduledAt: f.now.Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("AppointmentBook() error = %v, want booking to stand", err)
	}
	if _, ok := f.repo.appointments[out.ID]; !ok {
		t.Error("appointment should be persisted despite publish failure")
	}
}

func TestAppointmentBookIdempotentRetry(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	in := AppointmentBookInput{
		IdempotencyKey: "req-abc",
		PatientID:      patient.ID,
		DentistName:    "drg. Smith",
		ScheduledAt:    f.now.Add(24 * time.Hour),
	}

	if _, err := uc.AppointmentBook(context.Background(), in); err != nil {
		t.Fatalf("first AppointmentBook() error = %v", err)
	}

	_, err := uc.AppointmentBook(context.Background(), in)
	assertClinicError(t, err, http.StatusConflict, "Booking already processed")

	if len(f.repo.appointments) != 1 {
		t.Errorf("appointments = %d, want exactly 1 despite retry", len(f.repo.appointments))
	}
}

func TestAppointmentBookFailedKeyStaysFailed(t *testing.T) {
	uc, f := newTestClinicUsecase(t)

	in := AppointmentBookInput{
		IdempotencyKey: "req-def",
		PatientID:      999,
		DentistName:    "drg. Smith",
		ScheduledAt:    f.now.Add(24 * time.Hour),
	}

	_, err := uc.AppointmentBook(context.Background(), in)
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")

	seedPatient(f)
	_, err = uc.AppointmentBook(context.Background(), in)
	assertClinicError(t, err, http.StatusConflict, "Booking previously failed, use a new idempotency key")
}

func TestAppointmentBookDistinctKeysBookTwice(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	for _, key := range []string{"req-1", "req-2"} {
		if _, err := uc.AppointmentBook(context.Background(), AppointmentBookInput{
			IdempotencyKey: key,
			PatientID:      patient.ID,
			DentistName:    "drg. Smith",
			ScheduledAt:    f.now.Add(24 * time.Hour),
		}); err != nil {
			t.Fatalf("AppointmentBook(%s) error = %v", key, err)
		}
	}

	if len(f.repo.appointments) != 2 {
		t.Errorf("appointments = %d, want 2 for distinct keys", len(f.repo.appointments))
	}
}
