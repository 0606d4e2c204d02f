package usecase

import (
	"context"
	"time"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/hash"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/jwt"
	"github.com/caredent/caredent/internal/pkg/otp"
	"github.com/caredent/caredent/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// UpdatePasswordByEmail reports how many rows were touched so callers can
	// distinguish a missing account from a successful update.
	UpdatePasswordByEmail(ctx context.Context, email, hashed string) (int64, error)
	UpdatePassword(ctx context.Context, userID int64, hashed string) error
	UpdateEmail(ctx context.Context, userID int64, email string) error
}

// codeStore holds live one-time codes. Keys follow entity.OTPChannel.Key and
// values expire on their own; Get returns goerror.ErrNotFound for absent keys.
type codeStore interface {
	Set(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type notifier interface {
	SendOTPEmail(ctx context.Context, to, code string) error
	SendOTPSMS(ctx context.Context, to, code string) error
}

type Usecase struct {
	repoDB    repoDB
	codeStore codeStore
	notifier  notifier
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	otp       otp.Generator
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	CodeStore  codeStore
	Notifier   notifier
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	OTP        otp.Generator
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		codeStore: dep.CodeStore,
		notifier:  dep.Notifier,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		otp:       dep.OTP,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
