package model

type AdminUser struct {
	BaseModel
	Email        string `gorm:"type:citext;not null;uniqueIndex" json:"email"`
	Name         string `gorm:"type:text" json:"name"`
	PasswordHash string `gorm:"type:text;not null" json:"-"`
}

func (au AdminUser) TableName() string {
	return "admin_users"
}
