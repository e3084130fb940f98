package notification

import (
	htmltemplate "html/template"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Human readable submission time, computed once per notification.
const SubmittedAtLayout = "Monday, January 2, 2006 at 3:04 PM MST"

// Payload is everything a notification may need from a submission.
// Fields that do not apply to a kind are left empty.
type Payload struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string

	Services []string
	Budget   string

	// Consultation
	Timeline       string
	ProjectDetails string
	PreferredDate  string
	PreferredTime  string

	// Job application
	Position          string
	CoverLetter       string
	ResumeURL         string
	LinkedInURL       string
	PortfolioURL      string
	YearsOfExperience int

	// Newsletter
	Preferences []string
	Source      string

	// Service announcement
	Title    string
	Body     string
	CTAURL   string
	CTALabel string
}

// Announcement bodies are written by admins and may contain markup.
var announcementPolicy = bluemonday.UGCPolicy()

// Badges renders one escaped badge span per entry, in order.
// An empty list renders nothing.
func Badges(items []string) htmltemplate.HTML {
	if len(items) == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(`<span class="badge">`)
		b.WriteString(htmltemplate.HTMLEscapeString(item))
		b.WriteString(`</span>`)
	}

	return htmltemplate.HTML(b.String())
}

func FirstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// BuildContext assembles the data map for one notification. now is passed in
// so that rendering stays deterministic.
func (c Config) BuildContext(kind Kind, p Payload, now time.Time) RenderContext {
	data := RenderContext{
		"site_name":     c.SiteName,
		"site_url":      strings.TrimRight(c.SiteURL, "/"),
		"logo_url":      c.LogoURL,
		"support_email": c.SupportEmail,
		"admin_email":   c.AdminEmail,
		"year":          strconv.Itoa(now.Year()),
		"submitted_at":  now.Format(SubmittedAtLayout),
		"kind":          string(kind),

		"name":       p.Name,
		"first_name": FirstName(p.Name),
		"email":      p.Email,
		"phone":      p.Phone,
		"company":    p.Company,
		"message":    p.Message,
		"budget":     p.Budget,
	}

	_, replyTo := c.recipients(kind, p)
	data["reply_to"] = replyTo

	switch kind {
	case KindContactNotification, KindContactAutoReply, KindConsultationNotification:
		data["services"] = Badges(p.Services)
		data["services_list"] = nonNil(p.Services)
		data["services_text"] = strings.Join(p.Services, ", ")
	}

	switch kind {
	case KindConsultationNotification:
		data["timeline"] = p.Timeline
		data["project_details"] = p.ProjectDetails
		data["preferred_date"] = p.PreferredDate
		data["preferred_time"] = p.PreferredTime
	case KindJobApplicationNotification, KindJobApplicationAutoReply:
		data["position"] = p.Position
		data["cover_letter"] = p.CoverLetter
		data["resume_url"] = p.ResumeURL
		data["linkedin_url"] = p.LinkedInURL
		data["portfolio_url"] = p.PortfolioURL
		data["years_of_experience"] = strconv.Itoa(p.YearsOfExperience)
	case KindNewsletterWelcome:
		data["preferences"] = Badges(p.Preferences)
		data["preferences_list"] = nonNil(p.Preferences)
		data["preferences_text"] = strings.Join(p.Preferences, ", ")
		data["source"] = p.Source
	case KindServiceAnnouncement:
		data["title"] = p.Title
		data["body"] = htmltemplate.HTML(announcementPolicy.Sanitize(p.Body))
		data["cta_url"] = p.CTAURL
		data["cta_label"] = p.CTALabel
	}

	return data
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
