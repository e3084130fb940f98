package model

import (
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/lib/pq"
)

type ConsultationRequest struct {
	BaseModel
	Name           string                    `gorm:"type:text;not null" json:"name"`
	Email          string                    `gorm:"type:text;not null;index" json:"email"`
	Phone          string                    `gorm:"type:text" json:"phone"`
	Company        string                    `gorm:"type:text" json:"company"`
	Services       pq.StringArray            `gorm:"type:text[];not null;default:'{}'" json:"services"`
	Budget         string                    `gorm:"type:text" json:"budget"`
	Timeline       string                    `gorm:"type:text" json:"timeline"`
	ProjectDetails string                    `gorm:"type:text" json:"projectDetails"`
	PreferredDate  string                    `gorm:"type:text" json:"preferredDate"`
	PreferredTime  string                    `gorm:"type:text" json:"preferredTime"`
	Status         constant.SubmissionStatus `gorm:"type:text;not null;default:'new';index" json:"status"`
}

func (cr ConsultationRequest) TableName() string {
	return "consultation_requests"
}
