package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
)

type ResendMailer struct {
	client *resend.Client
}

func NewResend(apiKey string) *ResendMailer {
	return &ResendMailer{client: resend.NewClient(apiKey)}
}

func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}

	return sent.Id, nil
}
