package mailer

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type SendGridMailer struct {
	client    *sendgrid.Client
	isSandBox bool
}

func NewSendgrid(apiKey string, isProduction bool) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		// Sandbox mode is only used to validate your request. The email will never be delivered while this feature is enabled!
		isSandBox: !isProduction,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) (string, error) {
	message := m.build(msg)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("sendgrid: %w", err)
	}

	if response.StatusCode >= 300 {
		return "", fmt.Errorf("sendgrid: unexpected status %d: %s", response.StatusCode, response.Body)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}

	return "", nil
}

func (m *SendGridMailer) build(msg Message) *sgmail.SGMailV3 {
	message := sgmail.NewV3Mail()
	message.SetFrom(toSendGridEmail(msg.From))
	message.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	for _, to := range msg.To {
		p.AddTos(toSendGridEmail(to))
	}
	message.AddPersonalizations(p)

	if msg.Text != "" {
		message.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	message.AddContent(sgmail.NewContent("text/html", msg.HTML))

	if msg.ReplyTo != "" {
		message.SetReplyTo(toSendGridEmail(msg.ReplyTo))
	}

	message.SetMailSettings(&sgmail.MailSettings{
		SandboxMode: &sgmail.Setting{
			Enable: &m.isSandBox,
		},
	})

	return message
}

// Accepts "Name <email>" as well as a bare address.
func toSendGridEmail(address string) *sgmail.Email {
	if parsed, err := mail.ParseAddress(address); err == nil {
		return sgmail.NewEmail(parsed.Name, parsed.Address)
	}
	return sgmail.NewEmail("", address)
}
