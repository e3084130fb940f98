package notification

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed "templates"
var FS embed.FS

var templateFiles = map[Kind]string{
	KindContactNotification:        "contact-notification.html",
	KindContactAutoReply:           "contact-auto-reply.html",
	KindConsultationNotification:   "consultation-notification.html",
	KindJobApplicationNotification: "job-application-notification.html",
	KindJobApplicationAutoReply:    "job-application-auto-reply.html",
	KindNewsletterWelcome:          "newsletter-welcome.html",
	KindServiceAnnouncement:        "service-announcement.html",
}

// DefaultBody returns the built-in body template for kind, wrapped in the shared layout.
func DefaultBody(kind Kind) (string, error) {
	file, ok := templateFiles[kind]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var b strings.Builder
	for _, name := range []string{"partials/header.html", file, "partials/footer.html"} {
		content, err := FS.ReadFile("templates/" + name)
		if err != nil {
			return "", fmt.Errorf("read default template %s: %w", name, err)
		}
		b.Write(content)
	}

	return b.String(), nil
}

// DefaultSubject builds the built-in subject with plain interpolation.
func DefaultSubject(kind Kind, data RenderContext) string {
	str := func(key string) string {
		if s, ok := data[key].(string); ok {
			return s
		}
		return ""
	}

	switch kind {
	case KindContactNotification:
		return fmt.Sprintf("New Contact Form Submission from %s", str("name"))
	case KindContactAutoReply:
		return fmt.Sprintf("Thank you for contacting %s", str("site_name"))
	case KindConsultationNotification:
		return fmt.Sprintf("New Consultation Request from %s", str("name"))
	case KindJobApplicationNotification:
		return fmt.Sprintf("New Job Application: %s - %s", str("position"), str("name"))
	case KindJobApplicationAutoReply:
		return fmt.Sprintf("Application Received: %s at %s", str("position"), str("site_name"))
	case KindNewsletterWelcome:
		return fmt.Sprintf("Welcome to the %s Newsletter", str("site_name"))
	case KindServiceAnnouncement:
		if title := str("title"); title != "" {
			return title
		}
		return fmt.Sprintf("News from %s", str("site_name"))
	}

	return str("site_name")
}
