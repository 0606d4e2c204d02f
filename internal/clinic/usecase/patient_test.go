package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestPatientCreate(t *testing.T) {
	uc, f := newTestClinicUsecase(t)

	out, err := uc.PatientCreate(context.Background(), PatientCreateInput{
		FullName:  "  Jane Doe ",
		Email:     "Jane@Clinic.Test",
		Phone:     "+15550100",
		BirthDate: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("PatientCreate() error = %v", err)
	}

	created, ok := f.repo.patients[out.ID]
	if !ok {
		t.Fatal("patient was not persisted")
	}
	if created.FullName != "Jane Doe" {
		t.Errorf("FullName = %q, want trimmed %q", created.FullName, "Jane Doe")
	}
	if created.Email != "jane@clinic.test" {
		t.Errorf("Email = %q, want normalized %q", created.Email, "jane@clinic.test")
	}
}

func TestPatientCreateDuplicate(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	in := PatientCreateInput{
		FullName:  "Jane Doe",
		Email:     "jane@clinic.test",
		Phone:     "+15550100",
		BirthDate: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	if _, err := uc.PatientCreate(context.Background(), in); err != nil {
		t.Fatalf("first PatientCreate() error = %v", err)
	}

	_, err := uc.PatientCreate(context.Background(), in)
	assertClinicError(t, err, http.StatusConflict, "Patient already registered")
}

func TestPatientCreateInvalidInput(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	_, err := uc.PatientCreate(context.Background(), PatientCreateInput{
		FullName: "Jane Doe",
		Email:    "not-an-email",
		Phone:    "+15550100",
	})
	assertClinicError(t, err, http.StatusBadRequest, "")
}

func TestPatientGet(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	got, err := uc.PatientGet(context.Background(), PatientGetInput{ID: patient.ID})
	if err != nil {
		t.Fatalf("PatientGet() error = %v", err)
	}
	if got.FullName != patient.FullName {
		t.Errorf("FullName = %q, want %q", got.FullName, patient.FullName)
	}
}

func TestPatientGetNotFound(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	_, err := uc.PatientGet(context.Background(), PatientGetInput{ID: 999})
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")
}

func TestPatientList(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	seedPatient(f)

	out, err := uc.PatientList(context.Background(), PatientListInput{})
	if err != nil {
		t.Fatalf("PatientList() error = %v", err)
	}
	if out.Total != 1 {
		t.Errorf("Total = %d, want 1", out.Total)
	}
	if out.Page != 1 || out.Limit != 20 {
		t.Errorf("Page/Limit = %d/%d, want defaults 1/20", out.Page, out.Limit)
	}
}

func TestPatientListLimitCap(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	_, err := uc.PatientList(context.Background(), PatientListInput{Limit: 500})
	assertClinicError(t, err, http.StatusBadRequest, "")
}

func TestPatientUpdate(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	err := uc.PatientUpdate(context.Background(), PatientUpdateInput{
		ID:        patient.ID,
		FullName:  "Jane Doe-Smith",
		Email:     "jane@clinic.test",
		Phone:     "+15550100",
		BirthDate: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("PatientUpdate() error = %v", err)
	}

	if f.repo.patients[patient.ID].FullName != "Jane Doe-Smith" {
		t.Errorf("FullName = %q, want updated", f.repo.patients[patient.ID].FullName)
	}
}

func TestPatientUpdateNotFound(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	err := uc.PatientUpdate(context.Background(), PatientUpdateInput{
		ID:        999,
		FullName:  "Jane Doe",
		Email:     "jane@clinic.test",
		Phone:     "+15550100",
		BirthDate: time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
	})
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")
}

func TestPatientDelete(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	patient := seedPatient(f)

	if err := uc.PatientDelete(context.Background(), PatientDeleteInput{ID: patient.ID}); err != nil {
		t.Fatalf("PatientDelete() error = %v", err)
	}

	if _, ok := f.repo.patients[patient.ID]; ok {
		t.Error("patient should be removed")
	}
}

func TestPatientDeleteNotFound(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	err := uc.PatientDelete(context.Background(), PatientDeleteInput{ID: 999})
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")
}

func TestAppointmentListUnknownPatient(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	_, err := uc.AppointmentList(context.Background(), AppointmentListInput{PatientID: 999})
	assertClinicError(t, err, http.StatusNotFound, "Patient not found")
}
