package auth

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/juniorhq/junior/internal/auth/inbound"
	"github.com/juniorhq/junior/internal/auth/outbound/db"
	"github.com/juniorhq/junior/internal/auth/outbound/mailer"
	"github.com/juniorhq/junior/internal/auth/usecase"
	"github.com/juniorhq/junior/internal/pkg/clock"
	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/goroutine"
	"github.com/juniorhq/junior/internal/pkg/hash"
	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/mail"
	"github.com/juniorhq/junior/internal/pkg/otp"
	"github.com/juniorhq/junior/internal/pkg/router"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/uid"
	"github.com/juniorhq/junior/internal/pkg/validator"
	"github.com/juniorhq/junior/internal/pkg/view"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Sessions   session.Store              `validate:"required"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Views      view.Renderer              `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.DBConn, dep.Instrument)
	otpMailer := mailer.NewMailer(dep.Mail, dep.Config.GetString("mail.from"), dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     dbAuth,
		Notifier:   otpMailer,
		Sessions:   dep.Sessions,
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		OTP:        dep.OTP,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Goroutine:  dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, dep.Views)

	return nil
}
