package clinic

import (
	"github.com/caredent/caredent/internal/clinic/inbound"
	"github.com/caredent/caredent/internal/clinic/outbound/db"
	"github.com/caredent/caredent/internal/clinic/outbound/mq"
	"github.com/caredent/caredent/internal/clinic/outbound/store"
	"github.com/caredent/caredent/internal/clinic/usecase"
	"github.com/caredent/caredent/internal/pkg/clock"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/idempotency"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/messaging"
	"github.com/caredent/caredent/internal/pkg/router"
	"github.com/caredent/caredent/internal/pkg/storage"
	"github.com/caredent/caredent/internal/pkg/uid"
	"github.com/caredent/caredent/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Dependency struct {
	DBConn      *pgxpool.Pool              `validate:"required"`
	Router      *router.Router             `validate:"required"`
	Idempotency idempotency.Idempotency    `validate:"required"`
	Messaging   messaging.Messaging        `validate:"required"`
	Storage     storage.Storage            `validate:"required"`
	Config      config.Config              `validate:"required"`
	Instrument  instrument.Instrumentation `validate:"required"`
	UID         uid.NumberID               `validate:"required"`
	Clock       clock.Clocker              `validate:"required"`
	Validator   validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	fileStore := store.NewStore(dep.Storage, dep.Config, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		FileStore:     fileStore,
		Idempotency:   dep.Idempotency,
		Validator:     dep.Validator,
		Config:        dep.Config,
		UID:           dep.UID,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
