package model

import (
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/lib/pq"
)

type ContactSubmission struct {
	BaseModel
	Name     string                    `gorm:"type:text;not null" json:"name"`
	Email    string                    `gorm:"type:text;not null;index" json:"email"`
	Phone    string                    `gorm:"type:text" json:"phone"`
	Company  string                    `gorm:"type:text" json:"company"`
	Message  string                    `gorm:"type:text;not null" json:"message"`
	Services pq.StringArray            `gorm:"type:text[];not null;default:'{}'" json:"services"`
	Budget   string                    `gorm:"type:text" json:"budget"`
	Status   constant.SubmissionStatus `gorm:"type:text;not null;default:'new';index" json:"status"`
}

func (cs ContactSubmission) TableName() string {
	return "contact_submissions"
}
