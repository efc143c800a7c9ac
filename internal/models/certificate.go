package models

type Certificate struct {
	BaseModel
	UserID   string `gorm:"type:varchar(36);not null;index"`
	Title    string `gorm:"type:varchar(255);not null"`
	Issuer   string `gorm:"type:varchar(255)"`
	Date     string `gorm:"type:varchar(50)"`
	ImageURL string `gorm:"column:image_url;type:text"`
}

// All перечисляет модели для AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Project{},
		&Certificate{},
		&ReviewRequest{},
	}
}
