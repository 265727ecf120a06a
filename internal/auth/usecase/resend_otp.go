package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/juniorhq/junior/internal/pkg/goerror"
)

type ResendOtpInput struct {
	Email string
}

type ResendOtpOutput struct {
	Email string
}

// ResendOtp replaces the staged OTP with a fresh one, resets the session TTL,
// and dispatches a new verification email. The staged registration data is
// kept as is and not re-validated.
func (s *Usecase) ResendOtp(ctx context.Context, in ResendOtpInput) (*ResendOtpOutput, error) {
	ctx, span := s.startSpan(ctx, "ResendOtp")
	defer span.End()

	sid, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	pending := sess.PendingRegistration
	if pending == nil {
		return nil, goerror.NewSessionExpired("OTP session expired")
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		email = sess.EmailForOTP
	}
	if email == "" {
		return nil, goerror.NewBusiness("Email missing", goerror.CodeInvalidInput)
	}

	code := s.otp.Generate()
	ttl := s.otpTTL()

	pending.OTP = code
	pending.ExpiresAt = s.clock.Now().Add(ttl)
	sess.EmailForOTP = email

	if err := s.sessions.SaveWithExpiry(ctx, sid, sess, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to restage pending registration", "error", err)
		return nil, goerror.NewServer(err)
	}

	s.dispatchOTP(ctx, email, pending.FullName, code)

	return &ResendOtpOutput{Email: email}, nil
}
