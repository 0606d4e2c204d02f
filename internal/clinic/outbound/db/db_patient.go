package db

import (
	"context"

	"github.com/caredent/caredent/internal/clinic/entity"
)

const selectPatientColumns = `id, full_name, email, phone, birth_date, address, notes, updated_at`

func (s *DB) ListPatients(ctx context.Context, filter entity.PatientListFilter) (_ []entity.Patient, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListPatients")
	defer func() { s.endSpan(span, err) }()

	search := "%" + filter.Search + "%"
	offset := (filter.Page - 1) * filter.Limit

	var total int64
	countQuery := `SELECT count(*) FROM patients
		WHERE deleted_at IS NULL AND ($1 = '%%' OR full_name ILIKE $1 OR email ILIKE $1)`
	if err = s.conn.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, s.mapError(err)
	}

	query := `SELECT ` + selectPatientColumns + ` FROM patients
		WHERE deleted_at IS NULL AND ($1 = '%%' OR full_name ILIKE $1 OR email ILIKE $1)
		ORDER BY full_name ASC LIMIT $2 OFFSET $3`
	rows, err := s.conn.Query(ctx, query, search, filter.Limit, offset)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	patients := make([]entity.Patient, 0)
	for rows.Next() {
		var p entity.Patient
		if err = rows.Scan(&p.ID, &p.FullName, &p.Email, &p.Phone, &p.BirthDate,
			&p.Address, &p.Notes, &p.UpdatedAt); err != nil {
			return nil, 0, s.mapError(err)
		}
		patients = append(patients, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return patients, total, nil
}

func (s *DB) GetPatientByID(ctx context.Context, id int64) (_ *entity.Patient, err error) {
	ctx, span := s.startSpan(ctx, "GetPatientByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectPatientColumns + ` FROM patients WHERE id = $1 AND deleted_at IS NULL`

	var p entity.Patient
	err = s.conn.QueryRow(ctx, query, id).Scan(&p.ID, &p.FullName, &p.Email, &p.Phone,
		&p.BirthDate, &p.Address, &p.Notes, &p.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &p, nil
}

func (s *DB) CreatePatient(ctx context.Context, p entity.Patient) (err error) {
	ctx, span := s.startSpan(ctx, "CreatePatient")
	defer func() { s.endSpan(span, err) }()

	query := `INSERT INTO patients (id, full_name, email, phone, birth_date, address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = s.conn.Exec(ctx, query, p.ID, p.FullName, p.Email, p.Phone, p.BirthDate, p.Address, p.Notes)
	return s.mapError(err)
}

func (s *DB) UpdatePatient(ctx context.Context, p entity.Patient) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "UpdatePatient")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE patients
		SET full_name = $1, email = $2, phone = $3, birth_date = $4, address = $5, notes = $6, updated_at = now()
		WHERE id = $7 AND deleted_at IS NULL`
	tag, err := s.conn.Exec(ctx, query, p.FullName, p.Email, p.Phone, p.BirthDate, p.Address, p.Notes, p.ID)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}

func (s *DB) DeletePatient(ctx context.Context, id int64) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "DeletePatient")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE patients SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	tag, err := s.conn.Exec(ctx, query, id)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}
