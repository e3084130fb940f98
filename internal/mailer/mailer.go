package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"go.uber.org/zap"
)

var (
	ErrSendFailed  = errors.New("mailer: failed to send email")
	ErrNoRecipient = errors.New("mailer: no recipient")
)

// Message is one rendered email. From is filled in by the Transport.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

type Result struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
}

// Client is a single email provider. It returns the provider's message id.
type Client interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Transport sends messages through a Client exactly once. A provider failure
// is either returned wrapped in ErrSendFailed or, when fallback is enabled,
// logged and reported as a success with a local message id.
type Transport struct {
	client   Client
	from     string
	fallback bool
	logger   *zap.SugaredLogger
}

func NewTransport(client Client, cfg config.MailConfig, logger *zap.SugaredLogger) *Transport {
	if logger == nil {
		logger = util.NewNopLogger()
	}

	return &Transport{
		client:   client,
		from:     FormatAddress(cfg.FROM_NAME, cfg.FROM_EMAIL),
		fallback: cfg.FallbackOnTransportFailure,
		logger:   logger,
	}
}

func (t *Transport) Send(ctx context.Context, msg Message) (Result, error) {
	if len(msg.To) == 0 {
		return Result{}, ErrNoRecipient
	}

	if msg.From == "" {
		msg.From = t.from
	}

	id, err := t.client.Send(ctx, msg)
	if err == nil {
		t.logger.Debugw("Email sent", "to", msg.To, "subject", msg.Subject, "messageId", id)
		return Result{Success: true, MessageID: id}, nil
	}

	if !t.fallback {
		t.logger.Errorw("Email transport failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return Result{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	id = util.GenerateLocalMessageID()
	t.logger.Warnw("Email transport failed, email kept in log only",
		"to", msg.To,
		"replyTo", msg.ReplyTo,
		"subject", msg.Subject,
		"htmlBytes", len(msg.HTML),
		"html", msg.HTML,
		"messageId", id,
		"error", err,
	)

	return Result{Success: true, MessageID: id}, nil
}

// FormatAddress returns "Name <email>", or the bare email when name is empty.
// An empty email falls back to config.DefaultFromEmail.
func FormatAddress(name, email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		email = config.DefaultFromEmail
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return email
	}

	return fmt.Sprintf("%s <%s>", name, email)
}

// NewClient picks the provider named in the config.
func NewClient(cfg config.MailConfig, isProduction bool) (Client, error) {
	switch cfg.PROVIDER {
	case config.MailProviderResend, "":
		return NewResend(cfg.RESEND.API_KEY), nil
	case config.MailProviderSendGrid:
		return NewSendgrid(cfg.SEND_GRID.API_KEY, isProduction), nil
	default:
		return nil, fmt.Errorf("mailer: unknown provider %q", cfg.PROVIDER)
	}
}
