package mailer

import (
	"context"
	"fmt"
	"html"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/mail"
)

// Mailer delivers account-verification emails.
type Mailer struct {
	mail mail.Mail
	from string
	ins  instrument.Instrumentation
}

func NewMailer(m mail.Mail, from string, ins instrument.Instrumentation) *Mailer {
	return &Mailer{
		mail: m,
		from: from,
		ins:  ins,
	}
}

func (s *Mailer) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.outbound.mailer").Start(ctx, name)
}

// SendOTP emails a one-time verification code to the given recipient.
func (s *Mailer) SendOTP(ctx context.Context, email, name, otp string) error {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	msg := mail.Message{
		From:    s.from,
		To:      []string{email},
		Subject: "Your verification code",
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nYour verification code is %s.\n\nIt expires in 5 minutes. If you did not request this, ignore this email.\n",
			name, otp,
		),
		HTMLBody: fmt.Sprintf(
			`<p>Hi %s,</p><p>Your verification code is <strong>%s</strong>.</p><p>It expires in 5 minutes. If you did not request this, ignore this email.</p>`,
			html.EscapeString(name), otp,
		),
	}

	if err := s.mail.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
