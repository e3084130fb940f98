package constant

type SubmissionStatus string

// Rows are created as "new"; the remaining states belong to the admin surface.
const (
	SubmissionStatusNew      SubmissionStatus = "new"
	SubmissionStatusRead     SubmissionStatus = "read"
	SubmissionStatusReplied  SubmissionStatus = "replied"
	SubmissionStatusArchived SubmissionStatus = "archived"
)

type FormType string

const (
	FormContact        FormType = "contact"
	FormConsultation   FormType = "consultation"
	FormJobApplication FormType = "job_application"
	FormNewsletter     FormType = "newsletter"
)

const (
	NewsletterSourceWebsite = "website"

	// 5MB
	MaxResumeSize = 5 << 20
)

var AllowedResumeExtensions = []string{".pdf", ".doc", ".docx"}
