package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/juniorhq/junior/internal/pkg/clock"
	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/goroutine"
	"github.com/juniorhq/junior/internal/pkg/hash"
	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/mail"
	"github.com/juniorhq/junior/internal/pkg/otp"
	"github.com/juniorhq/junior/internal/pkg/router"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/sessioncookie"
	"github.com/juniorhq/junior/internal/pkg/uid"
	"github.com/juniorhq/junior/internal/pkg/validator"
	"github.com/juniorhq/junior/internal/pkg/view"
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
	cookie    sessioncookie.Codec

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	sessions  session.Store
	mail      mail.Mail
	views     view.Renderer

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
	app.initSessionCookie()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initViews()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
