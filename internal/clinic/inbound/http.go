package inbound

import (
	"context"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/clinic/usecase"
	"github.com/caredent/caredent/internal/pkg/router"
)

type uc interface {
	PatientList(ctx context.Context, in usecase.PatientListInput) (*usecase.PatientListOutput, error)
	PatientGet(ctx context.Context, in usecase.PatientGetInput) (*entity.Patient, error)
	PatientCreate(ctx context.Context, in usecase.PatientCreateInput) (*usecase.PatientCreateOutput, error)
	PatientUpdate(ctx context.Context, in usecase.PatientUpdateInput) error
	PatientDelete(ctx context.Context, in usecase.PatientDeleteInput) error

	AppointmentList(ctx context.Context, in usecase.AppointmentListInput) ([]entity.Appointment, error)
	AppointmentBook(ctx context.Context, in usecase.AppointmentBookInput) (*usecase.AppointmentBookOutput, error)
	AppointmentStatus(ctx context.Context, in usecase.AppointmentStatusInput) error

	RecordAttachment(ctx context.Context, in usecase.RecordAttachmentInput) (*usecase.RecordAttachmentOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Patient Directory
	r.GET("/api/v1/clinic/patients", end.PatientList)
	r.POST("/api/v1/clinic/patients", end.PatientCreate)
	r.GET("/api/v1/clinic/patients/:id", end.PatientGet)
	r.PUT("/api/v1/clinic/patients/:id", end.PatientUpdate)
	r.DELETE("/api/v1/clinic/patients/:id", end.PatientDelete)

	// Appointments
	r.GET("/api/v1/clinic/patients/:id/appointments", end.AppointmentList)
	r.POST("/api/v1/clinic/appointments", end.AppointmentBook)
	r.PATCH("/api/v1/clinic/appointments/:id/status", end.AppointmentStatus)

	// Dental Records
	r.PUT("/api/v1/clinic/patients/:id/records/:recordID/attachment", end.RecordAttachment)
}
