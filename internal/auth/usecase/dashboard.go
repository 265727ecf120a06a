package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/juniorhq/junior/internal/pkg/goerror"
)

type DashboardOutput struct {
	FullName string
	Email    string
}

// Dashboard returns the profile of the authenticated user.
func (s *Usecase) Dashboard(ctx context.Context) (*DashboardOutput, error) {
	ctx, span := s.startSpan(ctx, "Dashboard")
	defer span.End()

	_, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	if !sess.Authenticated() {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	user, err := s.repoDB.GetUserByID(ctx, sess.AuthUserID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			// Session points at a deleted account; treat as logged out.
			return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
		}
		slog.ErrorContext(ctx, "failed to get user by id", "user_id", sess.AuthUserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DashboardOutput{FullName: user.FullName, Email: user.Email}, nil
}
