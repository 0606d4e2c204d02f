package inbound

import (
	"time"

	"github.com/caredent/caredent/internal/clinic/entity"
	"github.com/caredent/caredent/internal/clinic/usecase"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes HTTP handlers for patients, appointments and records.
type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) PatientList(r *router.Request) (any, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return nil, err
	}

	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PatientList(r.Context(), usecase.PatientListInput{
		Search: r.GetQuery("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	return PatientListResponse{
		Patients: lo.Map(resp.Patients, func(p entity.Patient, _ int) PatientResponse {
			return toPatientResponse(p)
		}),
		total: resp.Total,
		page:  resp.Page,
		limit: resp.Limit,
	}, nil
}

func (h *HTTPEndpoint) PatientGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	patient, err := h.uc.PatientGet(r.Context(), usecase.PatientGetInput{ID: id})
	if err != nil {
		return nil, err
	}

	return toPatientResponse(*patient), nil
}

func (h *HTTPEndpoint) PatientCreate(r *router.Request) (any, error) {
	var req PatientRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.PatientCreate(r.Context(), usecase.PatientCreateInput{
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Address:   req.Address,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}

	return PatientCreateResponse{ID: resp.ID}, nil
}

func (h *HTTPEndpoint) PatientUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req PatientRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return nil, err
	}

	if err := h.uc.PatientUpdate(r.Context(), usecase.PatientUpdateInput{
		ID:        id,
		FullName:  req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		BirthDate: birthDate,
		Address:   req.Address,
		Notes:     req.Notes,
	}); err != nil {
		return nil, err
	}

	return PatientUpdateResponse{}, nil
}

func (h *HTTPEndpoint) PatientDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.PatientDelete(r.Context(), usecase.PatientDeleteInput{ID: id}); err != nil {
		return nil, err
	}

	return PatientDeleteResponse{}, nil
}

func (h *HTTPEndpoint) AppointmentList(r *router.Request) (any, error) {
	patientID, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	appointments, err := h.uc.AppointmentList(r.Context(), usecase.AppointmentListInput{
		PatientID: patientID,
	})
	if err != nil {
		return nil, err
	}

	return AppointmentListResponse{
		Appointments: lo.Map(appointments, func(a entity.Appointment, _ int) AppointmentResponse {
			return toAppointmentResponse(a)
		}),
	}, nil
}

func (h *HTTPEndpoint) AppointmentBook(r *router.Request) (any, error) {
	var req AppointmentBookRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.AppointmentBook(r.Context(), usecase.AppointmentBookInput{
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
		PatientID:      req.PatientID,
		DentistName:    req.DentistName,
		Reason:         req.Reason,
		ScheduledAt:    req.ScheduledAt,
	})
	if err != nil {
		return nil, err
	}

	return AppointmentBookResponse{ID: resp.ID}, nil
}

func (h *HTTPEndpoint) AppointmentStatus(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req AppointmentStatusRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.AppointmentStatus(r.Context(), usecase.AppointmentStatusInput{
		ID:     id,
		Status: req.Status,
	}); err != nil {
		return nil, err
	}

	return AppointmentStatusResponse{}, nil
}

func (h *HTTPEndpoint) RecordAttachment(r *router.Request) (any, error) {
	patientID, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	recordID, err := r.GetParamInt64("recordID")
	if err != nil {
		return nil, err
	}

	part, err := r.StreamSingleFile("file")
	if err != nil {
		return nil, err
	}
	defer func() { _ = part.Close() }()

	resp, err := h.uc.RecordAttachment(r.Context(), usecase.RecordAttachmentInput{
		PatientID:   patientID,
		RecordID:    recordID,
		FileName:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Size:        -1, // length unknown while streaming a multipart part
		Body:        part,
	})
	if err != nil {
		return nil, err
	}

	return RecordAttachmentResponse{URL: resp.URL}, nil
}

func parseBirthDate(raw string) (time.Time, error) {
	birthDate, err := time.Parse(birthDateLayout, raw)
	if err != nil {
		return time.Time{}, goerror.NewInvalidFormat("Invalid birth_date, use YYYY-MM-DD")
	}

	return birthDate, nil
}
