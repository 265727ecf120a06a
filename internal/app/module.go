package app

import (
	"log/slog"
	"os"

	"github.com/juniorhq/junior/internal/auth"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.auth.enabled") {
		if err := auth.New(auth.Dependency{
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Bcrypt:     a.bcrypt,
			Clock:      a.clock,
			OTP:        a.otp,
			Validator:  a.validator,
			Router:     a.router,
			Views:      a.views,
			Mail:       a.mail,
			DBConn:     a.dbConn,
			Sessions:   a.sessions,
			Goroutine:  a.goroutine,
		}); err != nil {
			slog.Error("failed to init module auth", "error", err)
			os.Exit(1)
		}
	}
}
