package model

type User struct {
	ID       string `gorm:"primaryKey;size:64;not null" json:"id"`
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash
}
