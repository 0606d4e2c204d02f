package identity

import (
	"github.com/caredent/caredent/internal/identity/inbound"
	"github.com/caredent/caredent/internal/identity/outbound/cache"
	"github.com/caredent/caredent/internal/identity/outbound/db"
	"github.com/caredent/caredent/internal/identity/outbound/notify"
	"github.com/caredent/caredent/internal/identity/usecase"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/hash"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/jwt"
	"github.com/caredent/caredent/internal/pkg/mail"
	"github.com/caredent/caredent/internal/pkg/otp"
	"github.com/caredent/caredent/internal/pkg/router"
	"github.com/caredent/caredent/internal/pkg/sms"
	"github.com/caredent/caredent/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	CacheConn  *redis.Client              `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	SMS        sms.SMS                    `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	codeStore := cache.NewCache(dep.CacheConn, dep.Instrument)
	notifier := notify.NewNotify(dep.Mail, dep.SMS, dep.Config, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		CodeStore:  codeStore,
		Notifier:   notifier,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		OTP:        dep.OTP,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
