package usecase

import (
	"context"
	"log/slog"

	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/session"
)

// Logout destroys the whole session, not just the authenticated flag.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	sid := session.SID(ctx)
	if sid == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sid); err != nil {
		slog.ErrorContext(ctx, "failed to delete session", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
