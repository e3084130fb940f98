package model

type SiteSetting struct {
	BaseModel
	Key   string `gorm:"type:text;not null;uniqueIndex" json:"key"`
	Value string `gorm:"type:text;not null;default:''" json:"value"`
}

func (ss SiteSetting) TableName() string {
	return "site_settings"
}
