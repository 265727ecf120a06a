package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/validator"
)

type RegisterInput struct {
	Name     string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,emailat"`
	Password string `validate:"required,min=8,hasupper,hasdigit,hasspecial"`
}

type RegisterOutput struct {
	Email string
}

// Register validates the submitted data, stages it in the session together
// with a fresh OTP, and dispatches the verification email. No user record is
// created until the OTP is verified.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Password = strings.TrimSpace(in.Password)

	fieldErrs := validator.V10ValidationError{}
	if err := s.validator.Validate(in); err != nil {
		var ve validator.V10ValidationError
		if !errors.As(err, &ve) {
			slog.ErrorContext(ctx, "failed to validate registration input", "error", err)
			return nil, goerror.NewServer(err)
		}
		fieldErrs = ve
	}

	// Pre-check only; the unique index on email remains the final authority
	// when the record is actually created at verification time.
	if _, bad := fieldErrs["email"]; !bad {
		exists, err := s.repoDB.ExistsUserByEmail(ctx, in.Email)
		if err != nil {
			slog.ErrorContext(ctx, "failed to check email existence", "email", in.Email, "error", err)
			return nil, goerror.NewServer(err)
		}
		if exists {
			fieldErrs["email"] = "This email is already registered"
		}
	}

	if len(fieldErrs) > 0 {
		return nil, goerror.NewInvalidInput(fieldErrs)
	}

	sid, sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	code := s.otp.Generate()
	ttl := s.otpTTL()

	// A new registration attempt overwrites any previous staged one.
	sess.PendingRegistration = &session.PendingRegistration{
		FullName:  in.Name,
		Email:     in.Email,
		Password:  in.Password,
		OTP:       code,
		ExpiresAt: s.clock.Now().Add(ttl),
	}
	sess.EmailForOTP = in.Email

	if err := s.sessions.SaveWithExpiry(ctx, sid, sess, ttl); err != nil {
		slog.ErrorContext(ctx, "failed to stage pending registration", "error", err)
		return nil, goerror.NewServer(err)
	}

	s.dispatchOTP(ctx, in.Email, in.Name, code)

	return &RegisterOutput{Email: in.Email}, nil
}
