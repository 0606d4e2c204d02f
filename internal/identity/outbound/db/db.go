package db

import (
	"context"
	"errors"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type DB struct {
	conn *pgxpool.Pool
	ins  instrument.Instrumentation
}

func NewDB(conn *pgxpool.Pool, ins instrument.Instrumentation) *DB {
	return &DB{conn: conn, ins: ins}
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return goerror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return goerror.ErrConflict
	}

	return err
}

func (s *DB) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.outbound.db").Start(ctx, name)
}

func (s *DB) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) && !errors.Is(err, goerror.ErrConflict) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

const selectUserColumns = `id, username, email, phone, full_name, role, password, updated_at`

func (s *DB) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.FullName, &u.Role, &u.Password, &u.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`
	user, err := s.scanUser(s.conn.QueryRow(ctx, query, email))
	return user, err
}

func (s *DB) GetUserByPhone(ctx context.Context, phone string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByPhone")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectUserColumns + ` FROM users WHERE phone = $1`
	user, err := s.scanUser(s.conn.QueryRow(ctx, query, phone))
	return user, err
}

func (s *DB) GetUserByUsername(ctx context.Context, username string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByUsername")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + selectUserColumns + ` FROM users WHERE username = $1`
	user, err := s.scanUser(s.conn.QueryRow(ctx, query, username))
	return user, err
}

func (s *DB) UpdatePasswordByEmail(ctx context.Context, email, hashed string) (_ int64, err error) {
	ctx, span := s.startSpan(ctx, "UpdatePasswordByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE users SET password = $1, updated_at = now() WHERE email = $2`
	tag, err := s.conn.Exec(ctx, query, hashed, email)
	if err != nil {
		return 0, s.mapError(err)
	}

	return tag.RowsAffected(), nil
}

func (s *DB) UpdatePassword(ctx context.Context, userID int64, hashed string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdatePassword")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE users SET password = $1, updated_at = now() WHERE id = $2`
	_, err = s.conn.Exec(ctx, query, hashed, userID)
	return s.mapError(err)
}

func (s *DB) UpdateEmail(ctx context.Context, userID int64, email string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateEmail")
	defer func() { s.endSpan(span, err) }()

	query := `UPDATE users SET email = $1, updated_at = now() WHERE id = $2`
	_, err = s.conn.Exec(ctx, query, email, userID)
	return s.mapError(err)
}
