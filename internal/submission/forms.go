package submission

import filestorage "github.com/SeakMengs/NorthwindSite/internal/file_storage"

type ContactForm struct {
	Name     string   `json:"name" form:"name" validate:"required,strNotEmpty,max=120"`
	Email    string   `json:"email" form:"email" validate:"required,email,max=254"`
	Phone    string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Company  string   `json:"company" form:"company" validate:"omitempty,max=160"`
	Message  string   `json:"message" form:"message" validate:"required,strNotEmpty,max=5000"`
	Services []string `json:"services" form:"services" validate:"omitempty,max=10,dive,max=100"`
	Budget   string   `json:"budget" form:"budget" validate:"omitempty,max=60"`
}

type ConsultationForm struct {
	Name           string   `json:"name" form:"name" validate:"required,strNotEmpty,max=120"`
	Email          string   `json:"email" form:"email" validate:"required,email,max=254"`
	Phone          string   `json:"phone" form:"phone" validate:"omitempty,phone"`
	Company        string   `json:"company" form:"company" validate:"omitempty,max=160"`
	Services       []string `json:"services" form:"services" validate:"omitempty,max=10,dive,max=100"`
	Budget         string   `json:"budget" form:"budget" validate:"omitempty,max=60"`
	Timeline       string   `json:"timeline" form:"timeline" validate:"omitempty,max=60"`
	ProjectDetails string   `json:"projectDetails" form:"projectDetails" validate:"omitempty,max=5000"`
	PreferredDate  string   `json:"preferredDate" form:"preferredDate" validate:"omitempty,datetime=2006-01-02"`
	PreferredTime  string   `json:"preferredTime" form:"preferredTime" validate:"omitempty,max=20"`
}

// Resume arrives as a multipart file and is checked after the tagged fields.
type JobApplicationForm struct {
	CareerListingID string `json:"careerListingId" form:"careerListingId" validate:"omitempty,uuid"`
	Position        string `json:"position" form:"position" validate:"required,strNotEmpty,max=160"`
	FullName        string `json:"fullName" form:"fullName" validate:"required,strNotEmpty,max=120"`
	Email           string `json:"email" form:"email" validate:"required,email,max=254"`
	Phone           string `json:"phone" form:"phone" validate:"omitempty,phone"`
	CoverLetter     string `json:"coverLetter" form:"coverLetter" validate:"omitempty,max=10000"`
	LinkedInURL     string `json:"linkedinUrl" form:"linkedinUrl" validate:"omitempty,url,max=300"`
	PortfolioURL    string `json:"portfolioUrl" form:"portfolioUrl" validate:"omitempty,url,max=300"`
	// Free text from the form, parsed leniently.
	YearsOfExperience string `json:"yearsOfExperience" form:"yearsOfExperience" validate:"omitempty,max=10"`

	Resume *filestorage.File `json:"-" form:"-" validate:"-"`
}

type NewsletterForm struct {
	Email       string   `json:"email" form:"email" validate:"required,email,max=254"`
	Name        string   `json:"name" form:"name" validate:"omitempty,max=120"`
	Preferences []string `json:"preferences" form:"preferences" validate:"omitempty,max=10,dive,max=100"`
	Source      string   `json:"source" form:"source" validate:"omitempty,max=40"`
}
