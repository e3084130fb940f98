package model

import (
	"github.com/SeakMengs/NorthwindSite/internal/constant"
	"github.com/lib/pq"
)

type NewsletterSubscription struct {
	BaseModel
	// Uniqueness is enforced by the database, see cmd/migrate.
	Email       string                    `gorm:"type:citext;not null;uniqueIndex" json:"email"`
	Name        string                    `gorm:"type:text" json:"name"`
	Preferences pq.StringArray            `gorm:"type:text[];not null;default:'{}'" json:"preferences"`
	Source      string                    `gorm:"type:text;not null;default:'website'" json:"source"`
	IsActive    bool                      `gorm:"not null;default:true" json:"isActive"`
	Status      constant.SubmissionStatus `gorm:"type:text;not null;default:'new'" json:"status"`
}

func (ns NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}
