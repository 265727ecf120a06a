package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/session"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	FullName string
}

// Login authenticates against the credential store. Unknown email, wrong
// password and inactive account all produce the same generic message so the
// response never reveals whether an address is registered.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if in.Email == "" {
		return nil, goerror.NewBusiness("Email is required", goerror.CodeInvalidInput)
	}
	if in.Password == "" {
		return nil, goerror.NewBusiness("Password is required", goerror.CodeInvalidInput)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewBusiness("Invalid email or password. Please try again.", goerror.CodeUnauthorized)
		}
		slog.ErrorContext(ctx, "failed to get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !user.IsActive || !s.bcrypt.Verify(user.PasswordHash, in.Password) {
		return nil, goerror.NewBusiness("Invalid email or password. Please try again.", goerror.CodeUnauthorized)
	}

	sid, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	sess.AuthUserID = user.ID
	sess.ClearPendingRegistration()
	sess.SetFlash(session.FlashLoginSuccess, "Welcome back, "+user.FullName+"!")

	if err := s.sessions.SaveWithExpiry(ctx, sid, sess, s.cfg.GetHour("modules.auth.session_ttl_hours")); err != nil {
		slog.ErrorContext(ctx, "failed to save authenticated session", "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateLastLogin(ctx, user.ID, s.clock.Now()); err != nil {
		slog.ErrorContext(ctx, "failed to update last login", "user_id", user.ID, "error", err)
	}

	return &LoginOutput{FullName: user.FullName}, nil
}
