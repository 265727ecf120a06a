package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/juniorhq/junior/internal/auth/entity"
	"github.com/juniorhq/junior/internal/pkg/goerror"
)

type VerifyOtpInput struct {
	OTP string
}

type VerifyOtpOutput struct {
	FullName string
	Email    string
}

// PendingEmail returns the address a staged registration belongs to, or an
// empty string when nothing is staged (expired or never registered).
func (s *Usecase) PendingEmail(ctx context.Context) (string, error) {
	ctx, span := s.startSpan(ctx, "PendingEmail")
	defer span.End()

	_, sess, err := s.currentSession(ctx)
	if err != nil {
		return "", err
	}

	if sess.PendingRegistration == nil {
		return "", nil
	}

	return sess.EmailForOTP, nil
}

// VerifyOtp compares the submitted code with the staged one and, on match,
// creates the user from the staged registration data.
func (s *Usecase) VerifyOtp(ctx context.Context, in VerifyOtpInput) (*VerifyOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOtp")
	defer span.End()

	sid, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	pending := sess.PendingRegistration
	if pending == nil {
		return nil, goerror.NewSessionExpired("Your OTP session has expired. Please register again.")
	}

	// Exact string match, no normalization of the code itself.
	if strings.TrimSpace(in.OTP) != pending.OTP {
		return nil, goerror.NewBusiness("Invalid OTP. Please try again.", goerror.CodeInvalidInput)
	}

	hashed, err := s.bcrypt.Hash(pending.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:       s.uid.Generate(),
		Email:    pending.Email,
		FullName: pending.FullName,
	}

	if err := s.repoDB.CreateUser(ctx, newUser, string(hashed), s.clock.Now()); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			// Someone else claimed the email between staging and now.
			slog.WarnContext(ctx, "email taken before otp verification completed", "email", pending.Email)
			return nil, goerror.NewBusiness("Registration failed", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to create user", "email", pending.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := &VerifyOtpOutput{FullName: pending.FullName, Email: pending.Email}

	sess.ClearPendingRegistration()
	if err := s.sessions.Save(ctx, sid, sess); err != nil {
		// The account exists; a stale staged value only lingers until TTL.
		slog.ErrorContext(ctx, "failed to clear pending registration", "error", err)
	}

	return out, nil
}
