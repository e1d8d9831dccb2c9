// Package mailer delivers the rendered word-of-the-day message over SMTP.
package mailer

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/mailer/mock_sender.go -package=mock_mailer

// Message represents a single email to be sent. All recipients share one
// envelope. HTMLBody is optional; when set it is attached as a multipart
// alternative.
type Message struct {
	From     string
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender abstracts email delivery for tests.
type Sender interface {
	Send(ctx context.Context, message Message) error
}

// DeliveryError indicates that the email could not be handed to the SMTP
// server: empty recipient list, authentication failure, or connection failure.
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("delivery failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("delivery failed: %s", e.Reason)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
