package app

import (
	"context"
	"net/http"

	"github.com/caredent/caredent/internal/pkg/clock"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/goroutine"
	"github.com/caredent/caredent/internal/pkg/hash"
	"github.com/caredent/caredent/internal/pkg/idempotency"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/jwt"
	"github.com/caredent/caredent/internal/pkg/mail"
	"github.com/caredent/caredent/internal/pkg/messaging"
	"github.com/caredent/caredent/internal/pkg/otp"
	"github.com/caredent/caredent/internal/pkg/router"
	"github.com/caredent/caredent/internal/pkg/sms"
	"github.com/caredent/caredent/internal/pkg/storage"
	"github.com/caredent/caredent/internal/pkg/uid"
	"github.com/caredent/caredent/internal/pkg/validator"
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       otp.Generator
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	idemp     idempotency.Idempotency
	mail      mail.Mail
	sms       sms.SMS
	messaging messaging.Messaging
	storage   storage.Storage
	casbin    *casbin.Enforcer

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initSMS()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
