package model

import "github.com/SeakMengs/NorthwindSite/internal/constant"

type JobApplication struct {
	BaseModel
	CareerListingID   *string                   `gorm:"type:text;index" json:"careerListingId"`
	Position          string                    `gorm:"type:text;not null" json:"position"`
	FullName          string                    `gorm:"type:text;not null" json:"fullName"`
	Email             string                    `gorm:"type:text;not null;index" json:"email"`
	Phone             string                    `gorm:"type:text" json:"phone"`
	ResumeURL         string                    `gorm:"type:text" json:"resumeUrl"`
	CoverLetter       string                    `gorm:"type:text" json:"coverLetter"`
	LinkedInURL       string                    `gorm:"type:text" json:"linkedinUrl"`
	PortfolioURL      string                    `gorm:"type:text" json:"portfolioUrl"`
	YearsOfExperience int                       `gorm:"type:integer;not null;default:0" json:"yearsOfExperience"`
	Status            constant.SubmissionStatus `gorm:"type:text;not null;default:'new';index" json:"status"`

	CareerListing *CareerListing `gorm:"constraint:OnDelete:SET NULL" json:"careerListing,omitempty"`
}

func (ja JobApplication) TableName() string {
	return "job_applications"
}
