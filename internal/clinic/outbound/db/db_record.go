package db

import (
	"context"

	"github.com/caredent/caredent/internal/clinic/entity"
)

func (s *DB) GetDentalRecord(ctx context.Context, patientID, recordID int64) (_ *entity.DentalRecord, err error) {
	ctx, span := s.startSpan(ctx, "GetDentalRecord")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT id, patient_id, diagnosis, treatment, attachment_key, updated_at
		FROM dental_records WHERE id = $1 AND patient_id = $2`

	var r entity.DentalRecord
	err = s.conn.QueryRow(ctx, query, recordID, patientID).Scan(&r.ID, &r.PatientID,
		&r.Diagnosis, &r.Treatment, &r.AttachmentKey, &r.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &r, nil
}

func (s *DB) UpdateRecordAttachment(ctx context.Context, recordID int64, key string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateRecordAttachment")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE dental_records SET attachment_key = $1, updated_at = now() WHERE id = $2`
	_, err = s.conn.Exec(ctx, query, key, recordID)
	return s.mapError(err)
}
