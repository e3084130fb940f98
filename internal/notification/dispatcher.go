package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SeakMengs/NorthwindSite/internal/config"
	"github.com/SeakMengs/NorthwindSite/internal/mailer"
	"github.com/SeakMengs/NorthwindSite/internal/metrics"
	"github.com/SeakMengs/NorthwindSite/internal/model"
	"github.com/SeakMengs/NorthwindSite/internal/util"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	templateSourceCustom  = "custom"
	templateSourceDefault = "default"
)

// TemplateStore looks up the active admin override for a kind.
type TemplateStore interface {
	GetActiveByType(ctx context.Context, tx *gorm.DB, templateType string) (*model.EmailTemplate, error)
}

// Sender delivers a rendered message. *mailer.Transport implements it.
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) (mailer.Result, error)
}

type Config struct {
	SiteName     string
	SiteURL      string
	LogoURL      string
	AdminEmail   string
	SupportEmail string
}

func NewConfig(cfg config.Config) Config {
	return Config{
		SiteName:     util.GetAppName(),
		SiteURL:      cfg.FrontendURL,
		LogoURL:      util.GetAppLogoURL(cfg.FrontendURL),
		AdminEmail:   cfg.Mail.ADMIN_EMAIL,
		SupportEmail: cfg.Mail.SUPPORT_EMAIL,
	}
}

// recipients returns who gets the email and where replies go. Admin
// notifications reply to the submitter, everything else to support.
func (c Config) recipients(kind Kind, p Payload) ([]string, string) {
	if kind.IsAdminNotification() {
		return []string{c.AdminEmail}, p.Email
	}

	if strings.TrimSpace(p.Email) == "" {
		return nil, c.SupportEmail
	}
	return []string{p.Email}, c.SupportEmail
}

type Dispatcher struct {
	store  TemplateStore
	sender Sender
	html   Renderer
	text   Renderer
	cfg    Config
	clock  func() time.Time
	logger *zap.SugaredLogger
}

type Option func(*Dispatcher)

func WithClock(clock func() time.Time) Option {
	return func(d *Dispatcher) { d.clock = clock }
}

// WithRenderers swaps the body and subject renderers.
func WithRenderers(html, text Renderer) Option {
	return func(d *Dispatcher) {
		d.html = html
		d.text = text
	}
}

// store may be nil, in which case the default catalog is always used.
func NewDispatcher(store TemplateStore, sender Sender, cfg Config, logger *zap.SugaredLogger, opts ...Option) *Dispatcher {
	if logger == nil {
		logger = util.NewNopLogger()
	}

	d := &Dispatcher{
		store:  store,
		sender: sender,
		html:   NewHTMLRenderer(),
		text:   NewTextRenderer(),
		cfg:    cfg,
		clock:  func() time.Time { return time.Now().UTC() },
		logger: logger,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Send renders kind for p and hands it to the Sender. The Sender's result is
// returned as is.
func (d *Dispatcher) Send(ctx context.Context, kind Kind, p Payload) (mailer.Result, error) {
	if !kind.Valid() {
		return mailer.Result{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	start := time.Now()
	defer func() {
		metrics.NotificationDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	data := d.cfg.BuildContext(kind, p, d.clock())
	msg, source, err := d.Compose(ctx, kind, data)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(string(kind), source, metrics.OutcomeFailed).Inc()
		return mailer.Result{}, err
	}

	msg.To, msg.ReplyTo = d.cfg.recipients(kind, p)

	res, err := d.sender.Send(ctx, msg)
	switch {
	case err != nil:
		metrics.NotificationsTotal.WithLabelValues(string(kind), source, metrics.OutcomeFailed).Inc()
	case strings.HasPrefix(res.MessageID, util.LocalMessageIDPrefix):
		metrics.NotificationsTotal.WithLabelValues(string(kind), source, metrics.OutcomeFallback).Inc()
	default:
		metrics.NotificationsTotal.WithLabelValues(string(kind), source, metrics.OutcomeSuccess).Inc()
	}

	return res, err
}

// Compose renders subject and body, preferring an active custom template.
// A failed lookup or a custom template that does not render falls back to the
// default catalog.
func (d *Dispatcher) Compose(ctx context.Context, kind Kind, data RenderContext) (mailer.Message, string, error) {
	if custom := d.customTemplate(ctx, kind); custom != nil {
		msg, err := d.render(custom.Subject, custom.HTMLContent, data)
		if err == nil {
			return msg, templateSourceCustom, nil
		}
		d.logger.Warnw("Custom email template failed to render, using default", "kind", kind, "templateId", custom.ID, "error", err)
	}

	body, err := DefaultBody(kind)
	if err != nil {
		return mailer.Message{}, templateSourceDefault, err
	}

	html, err := d.html.Render(body, data)
	if err != nil {
		return mailer.Message{}, templateSourceDefault, fmt.Errorf("render default %s body: %w", kind, err)
	}

	return mailer.Message{Subject: DefaultSubject(kind, data), HTML: html}, templateSourceDefault, nil
}

func (d *Dispatcher) customTemplate(ctx context.Context, kind Kind) *model.EmailTemplate {
	if d.store == nil {
		return nil
	}

	tmpl, err := d.store.GetActiveByType(ctx, nil, string(kind))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			d.logger.Warnw("Email template lookup failed, using default", "kind", kind, "error", err)
		}
		return nil
	}

	return tmpl
}

func (d *Dispatcher) render(subjectTmpl, bodyTmpl string, data RenderContext) (mailer.Message, error) {
	subject, err := d.text.Render(subjectTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}

	html, err := d.html.Render(bodyTmpl, data)
	if err != nil {
		return mailer.Message{}, err
	}

	return mailer.Message{Subject: subject, HTML: html}, nil
}

type Announcement struct {
	Title    string
	Body     string
	CTAURL   string
	CTALabel string
}

type BroadcastResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// Broadcast sends a service announcement to each recipient in turn. A failed
// recipient is logged and counted, the rest are still attempted.
func (d *Dispatcher) Broadcast(ctx context.Context, a Announcement, recipients []string) (BroadcastResult, error) {
	var result BroadcastResult

	for _, to := range recipients {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		_, err := d.Send(ctx, KindServiceAnnouncement, Payload{
			Email:    to,
			Title:    a.Title,
			Body:     a.Body,
			CTAURL:   a.CTAURL,
			CTALabel: a.CTALabel,
		})
		if err != nil {
			result.Failed++
			d.logger.Errorw("Service announcement failed", "to", to, "error", err)
			continue
		}
		result.Sent++
	}

	d.logger.Infow("Service announcement finished", "title", a.Title, "sent", result.Sent, "failed", result.Failed)

	return result, nil
}
