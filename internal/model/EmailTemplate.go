package model

// Admin editable override of a built-in notification template.
// Subject and HTMLContent are templates themselves.
type EmailTemplate struct {
	BaseModel
	TemplateType string `gorm:"type:text;not null;index:idx_email_templates_type_active" json:"templateType"`
	Name         string `gorm:"type:text" json:"name"`
	Description  string `gorm:"type:text" json:"description"`
	Subject      string `gorm:"type:text;not null" json:"subject"`
	HTMLContent  string `gorm:"column:html_content;type:text;not null" json:"htmlContent"`
	IsActive     bool   `gorm:"not null;default:false;index:idx_email_templates_type_active" json:"isActive"`
}

func (et EmailTemplate) TableName() string {
	return "email_templates"
}
