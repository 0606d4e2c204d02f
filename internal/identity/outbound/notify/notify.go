package notify

import (
	"context"
	"fmt"

	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/mail"
	"github.com/caredent/caredent/internal/pkg/sms"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Notify delivers one-time codes over the channel they were requested on.
// Delivery is synchronous; the caller decides what a failed send means.
type Notify struct {
	mail mail.Mail
	sms  sms.SMS
	cfg  config.Config
	ins  instrument.Instrumentation
}

func NewNotify(m mail.Mail, s sms.SMS, cfg config.Config, ins instrument.Instrumentation) *Notify {
	return &Notify{mail: m, sms: s, cfg: cfg, ins: ins}
}

func (n *Notify) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return n.ins.Tracer("identity.outbound.notify").Start(ctx, name)
}

func (n *Notify) SendOTPEmail(ctx context.Context, to, code string) error {
	ctx, span := n.startSpan(ctx, "SendOTPEmail")
	defer span.End()

	err := n.mail.Send(ctx, mail.Message{
		From:     n.cfg.GetString("mail.from"),
		To:       []string{to},
		Subject:  "Your verification code",
		TextBody: fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

func (n *Notify) SendOTPSMS(ctx context.Context, to, code string) error {
	ctx, span := n.startSpan(ctx, "SendOTPSMS")
	defer span.End()

	err := n.sms.Send(ctx, sms.Message{
		To:   to,
		Body: fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
