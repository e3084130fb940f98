package model

import "github.com/lib/pq"

type CareerListing struct {
	BaseModel
	Title          string         `gorm:"type:text;not null" json:"title"`
	Department     string         `gorm:"type:text" json:"department"`
	Location       string         `gorm:"type:text" json:"location"`
	EmploymentType string         `gorm:"type:text" json:"employmentType"`
	Description    string         `gorm:"type:text" json:"description"`
	Requirements   pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"requirements"`
	IsActive       bool           `gorm:"not null;default:true;index" json:"isActive"`
	SortOrder      int            `gorm:"not null;default:0" json:"sortOrder"`
}

func (cl CareerListing) TableName() string {
	return "career_listings"
}
