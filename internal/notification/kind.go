package notification

import "errors"

var ErrUnknownKind = errors.New("notification: unknown kind")

// Kind identifies a template and recipient pair. The values double as the
// template_type column of email_templates.
type Kind string

const (
	KindContactNotification        Kind = "contact_notification"
	KindContactAutoReply           Kind = "contact_auto_reply"
	KindConsultationNotification   Kind = "consultation_notification"
	KindJobApplicationNotification Kind = "job_application_notification"
	KindJobApplicationAutoReply    Kind = "job_application_auto_reply"
	KindNewsletterWelcome          Kind = "newsletter_welcome"
	// Only sent through Broadcast.
	KindServiceAnnouncement Kind = "service_announcement"
)

var Kinds = []Kind{
	KindContactNotification,
	KindContactAutoReply,
	KindConsultationNotification,
	KindJobApplicationNotification,
	KindJobApplicationAutoReply,
	KindNewsletterWelcome,
	KindServiceAnnouncement,
}

func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// IsAdminNotification is true for kinds addressed to the site owner.
func (k Kind) IsAdminNotification() bool {
	switch k {
	case KindContactNotification, KindConsultationNotification, KindJobApplicationNotification:
		return true
	}
	return false
}
