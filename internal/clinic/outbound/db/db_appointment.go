package db

import (
	"context"

	"github.com/caredent/caredent/internal/clinic/entity"
)

const selectAppointmentColumns = `id, patient_id, dentist_name, reason, status, scheduled_at, updated_at`

func (s *DB) ListAppointmentsByPatient(ctx context.Context, patientID int64) (_ []entity.Appointment, err error) {
	ctx, span := s.startSpan(ctx, "ListAppointmentsByPatient")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectAppointmentColumns + ` FROM appointments
		WHERE patient_id = $1 ORDER BY scheduled_at DESC`
	rows, err := s.conn.Query(ctx, query, patientID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	appointments := make([]entity.Appointment, 0)
	for rows.Next() {
		var a entity.Appointment
		if err = rows.Scan(&a.ID, &a.PatientID, &a.DentistName, &a.Reason,
			&a.Status, &a.ScheduledAt, &a.UpdatedAt); err != nil {
			return nil, s.mapError(err)
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return appointments, nil
}

func (s *DB) GetAppointmentByID(ctx context.Context, id int64) (_ *entity.Appointment, err error) {
	ctx, span := s.startSpan(ctx, "GetAppointmentByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectAppointmentColumns + ` FROM appointments WHERE id = $1`

	var a entity.Appointment
	err = s.conn.QueryRow(ctx, query, id).Scan(&a.ID, &a.PatientID, &a.DentistName,
		&a.Reason, &a.Status, &a.ScheduledAt, &a.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &a, nil
}

func (s *DB) CreateAppointment(ctx context.Context, a entity.Appointment) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAppointment")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO appointments (id, patient_id, dentist_name, reason, status, scheduled_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = s.conn.Exec(ctx, query, a.ID, a.PatientID, a.DentistName, a.Reason, a.Status, a.ScheduledAt)
	return s.mapError(err)
}

func (s *DB) UpdateAppointmentStatus(ctx context.Context, id int64, from, to entity.AppointmentStatus) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "UpdateAppointmentStatus")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE appointments SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`
	tag, err := s.conn.Exec(ctx, query, to, id, from)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
