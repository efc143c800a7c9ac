package models

type User struct {
	BaseModel
	Name         string   `gorm:"type:varchar(255);not null"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"column:password_hash;not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'"`
	Title        string   `gorm:"type:varchar(255)"`
	Bio          string   `gorm:"type:text"`
	AvatarURL    string   `gorm:"column:avatar_url;type:text"`

	// Relations
	Projects       []Project       `gorm:"foreignKey:UserID"`
	Certificates   []Certificate   `gorm:"foreignKey:UserID"`
	ReviewRequests []ReviewRequest `gorm:"foreignKey:MenteeID"`
}
