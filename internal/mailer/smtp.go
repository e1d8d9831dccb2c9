package mailer

import (
	"context"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the connection settings for the outgoing SMTP server.
type SMTPConfig struct {
	Server         string
	Port           int
	SenderEmail    string
	SenderPassword string
}

// SMTPSender sends messages through a single STARTTLS SMTP session per send.
type SMTPSender struct {
	config SMTPConfig
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(config SMTPConfig) *SMTPSender {
	return &SMTPSender{config: config}
}

// Send delivers one message with all recipients in the envelope. There is no
// retry and no per-recipient fallback: the SMTP acknowledgment is the only
// delivery confirmation.
func (sender *SMTPSender) Send(ctx context.Context, message Message) error {
	if len(message.To) == 0 {
		return &DeliveryError{Reason: "recipient list is empty"}
	}

	msg := mail.NewMsg()
	if err := msg.From(message.From); err != nil {
		return &DeliveryError{Reason: "invalid sender address", Err: err}
	}
	if err := msg.To(message.To...); err != nil {
		return &DeliveryError{Reason: "invalid recipient address", Err: err}
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextPlain, message.TextBody)
	if message.HTMLBody != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, message.HTMLBody)
	}

	client, err := mail.NewClient(sender.config.Server,
		mail.WithPort(sender.config.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(sender.config.SenderEmail),
		mail.WithPassword(sender.config.SenderPassword),
	)
	if err != nil {
		return &DeliveryError{Reason: "failed to create SMTP client", Err: err}
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return &DeliveryError{Reason: "failed to send email", Err: err}
	}

	slog.Default().Debug("email sent",
		"recipients", len(message.To),
		"subject", message.Subject,
	)
	return nil
}
