package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/session"
)

type HomeOutput struct {
	Authenticated bool
	FullName      string
	// Flash is the one-time welcome message, empty after its first read.
	Flash string
}

// Home returns the data for the landing page, popping the post-login flash so
// it renders exactly once.
func (s *Usecase) Home(ctx context.Context) (*HomeOutput, error) {
	ctx, span := s.startSpan(ctx, "Home")
	defer span.End()

	sid, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	out := &HomeOutput{Authenticated: sess.Authenticated()}

	if flash, ok := sess.PopFlash(session.FlashLoginSuccess); ok {
		out.Flash = flash
		if err := s.sessions.Save(ctx, sid, sess); err != nil {
			slog.ErrorContext(ctx, "failed to save session after flash pop", "error", err)
		}
	}

	if sess.Authenticated() {
		user, err := s.repoDB.GetUserByID(ctx, sess.AuthUserID)
		if err != nil && !errors.Is(err, goerror.ErrNotFound) {
			slog.ErrorContext(ctx, "failed to get user by id", "user_id", sess.AuthUserID, "error", err)
			return nil, goerror.NewServer(err)
		}
		if err == nil {
			out.FullName = user.FullName
		}
	}

	return out, nil
}
