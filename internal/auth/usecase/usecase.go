package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/juniorhq/junior/internal/auth/entity"
	"github.com/juniorhq/junior/internal/pkg/clock"
	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/goroutine"
	"github.com/juniorhq/junior/internal/pkg/hash"
	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/otp"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/uid"
	"github.com/juniorhq/junior/internal/pkg/validator"
)

type repoDB interface {
	CreateUser(ctx context.Context, in entity.NewUser, passwordHash string, joinedAt time.Time) error
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
}

type notifier interface {
	SendOTP(ctx context.Context, email, name, otp string) error
}

type Usecase struct {
	repoDB    repoDB
	notifier  notifier
	sessions  session.Store
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	uid       uid.NumberID
	otp       otp.Generator
	clock     clock.Clocker
	ins       instrument.Instrumentation
	goroutine *goroutine.Manager
}

type Dependency struct {
	RepoDB     repoDB
	Notifier   notifier
	Sessions   session.Store
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	UID        uid.NumberID
	OTP        otp.Generator
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Goroutine  *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		notifier:  dep.Notifier,
		sessions:  dep.Sessions,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		otp:       dep.OTP,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		goroutine: dep.Goroutine,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.usecase").Start(ctx, name)
}

func (s *Usecase) otpTTL() time.Duration {
	return s.cfg.GetSecond("modules.auth.otp_ttl_seconds")
}

// currentSession loads the typed session for the sid carried in ctx.
func (s *Usecase) currentSession(ctx context.Context) (string, *session.Session, error) {
	sid := session.SID(ctx)
	if sid == "" {
		return "", nil, goerror.NewServer(errors.New("no session id in request context"))
	}

	sess, err := s.sessions.Get(ctx, sid)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load session", "error", err)
		return "", nil, goerror.NewServer(err)
	}

	return sid, sess, nil
}

// dispatchOTP hands the mail off to a detached goroutine. Delivery failures
// are logged and swallowed; the HTTP response never waits on or sees them.
func (s *Usecase) dispatchOTP(ctx context.Context, email, name, code string) {
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.notifier.SendOTP(ctx, email, name, code); err != nil {
			slog.ErrorContext(ctx, "failed to send otp email", "email", email, "error", err)
		}
		return nil
	})
}
