package usecase

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/caredent/caredent/internal/clinic/entity"
)

func seedRecord(f *clinicFixture) *entity.DentalRecord {
	rec := &entity.DentalRecord{
		ID:        300,
		PatientID: 100,
		Diagnosis: "Caries on molar 36",
		Treatment: "Composite filling",
	}
	f.repo.records[rec.ID] = rec

	return rec
}

func TestRecordAttachment(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	seedPatient(f)
	rec := seedRecord(f)

	out, err := uc.RecordAttachment(context.Background(), RecordAttachmentInput{
		PatientID:   rec.PatientID,
		RecordID:    rec.ID,
		FileName:    "xray.png",
		ContentType: "image/png",
		Size:        -1,
		Body:        bytes.NewReader([]byte("png-bytes")),
	})
	if err != nil {
		t.Fatalf("RecordAttachment() error = %v", err)
	}

	wantKey := "records/100/300/xray.png"
	if string(f.files.objects[wantKey]) != "png-bytes" {
		t.Errorf("stored object under %q = %q, want %q", wantKey, f.files.objects[wantKey], "png-bytes")
	}
	if f.repo.attachments[rec.ID] != wantKey {
		t.Errorf("linked key = %q, want %q", f.repo.attachments[rec.ID], wantKey)
	}
	if out.URL != "https://files.test/"+wantKey {
		t.Errorf("URL = %q, want %q", out.URL, "https://files.test/"+wantKey)
	}
}

func TestRecordAttachmentStripsPath(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	rec := seedRecord(f)

	out, err := uc.RecordAttachment(context.Background(), RecordAttachmentInput{
		PatientID: rec.PatientID,
		RecordID:  rec.ID,
		FileName:  "../../etc/passwd",
		Size:      -1,
		Body:      bytes.NewReader([]byte("data")),
	})
	if err != nil {
		t.Fatalf("RecordAttachment() error = %v", err)
	}

	wantKey := "records/100/300/passwd"
	if out.URL != "https://files.test/"+wantKey {
		t.Errorf("URL = %q, want traversal-free key %q", out.URL, wantKey)
	}
}

func TestRecordAttachmentMissingRecord(t *testing.T) {
	uc, _ := newTestClinicUsecase(t)

	_, err := uc.RecordAttachment(context.Background(), RecordAttachmentInput{
		PatientID: 100,
		RecordID:  999,
		FileName:  "xray.png",
		Size:      -1,
		Body:      bytes.NewReader([]byte("data")),
	})
	assertClinicError(t, err, http.StatusNotFound, "Dental record not found")
}

func TestRecordAttachmentWrongPatient(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	rec := seedRecord(f)

	_, err := uc.RecordAttachment(context.Background(), RecordAttachmentInput{
		PatientID: rec.PatientID + 1,
		RecordID:  rec.ID,
		FileName:  "xray.png",
		Size:      -1,
		Body:      bytes.NewReader([]byte("data")),
	})
	assertClinicError(t, err, http.StatusNotFound, "Dental record not found")
}

func TestRecordAttachmentMissingBody(t *testing.T) {
	uc, f := newTestClinicUsecase(t)
	rec := seedRecord(f)

	_, err := uc.RecordAttachment(context.Background(), RecordAttachmentInput{
		PatientID: rec.PatientID,
		RecordID:  rec.ID,
		FileName:  "xray.png",
		Size:      -1,
	})
	assertClinicError(t, err, http.StatusBadRequest, "Attachment file is required")
}
