package inbound

import (
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/pkg/router"
)

const birthDateLayout = "2006-01-02"

type PatientRequest struct {
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Address   string `json:"address"`
	Notes     string `json:"notes"`
}

type PatientResponse struct {
	ID        int64     `json:"id,string"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BirthDate string    `json:"birth_date"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toPatientResponse(p entity.Patient) PatientResponse {
	return PatientResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Email:     p.Email,
		Phone:     p.Phone,
		BirthDate: p.BirthDate.Format(birthDateLayout),
		Address:   p.Address,
		Notes:     p.Notes,
		UpdatedAt: p.UpdatedAt,
	}
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`

	total int64
	page  int32
	limit int32
}

func (r PatientListResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"page":  r.page,
		"limit": r.limit,
	}
}

type PatientCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (PatientCreateResponse) StatusCode() int {
	return 201
}

func (PatientCreateResponse) Message() string {
	return "Patient registered"
}

type PatientUpdateResponse struct {
	router.EmptyBody
}

func (PatientUpdateResponse) Message() string {
	return "Patient updated"
}

type PatientDeleteResponse struct {
	router.EmptyBody
}

func (PatientDeleteResponse) Message() string {
	return "Patient deleted"
}

type AppointmentResponse struct {
	ID          int64     `json:"id,string"`
	PatientID   int64     `json:"patient_id,string"`
	DentistName string    `json:"dentist_name"`
	Reason      string    `json:"reason"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAppointmentResponse(a entity.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          a.ID,
		PatientID:   a.PatientID,
		DentistName: a.DentistName,
		Reason:      a.Reason,
		Status:      a.Status.String(),
		ScheduledAt: a.ScheduledAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type AppointmentBookRequest struct {
	PatientID   int64     `json:"patient_id,string"`
	DentistName string    `json:"dentist_name"`
	Reason      string    `json:"reason"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

type AppointmentBookResponse struct {
	ID int64 `json:"id,string"`
}

func (AppointmentBookResponse) StatusCode() int {
	return 201
}

func (AppointmentBookResponse) Message() string {
	return "Appointment booked"
}

type AppointmentStatusRequest struct {
	Status string `json:"status"`
}

type AppointmentStatusResponse struct {
	router.EmptyBody
}

func (AppointmentStatusResponse) Message() string {
	return "Appointment status updated"
}

type RecordAttachmentResponse struct {
	URL string `json:"url"`
}

func (RecordAttachmentResponse) Message() string {
	return "Attachment uploaded"
}
