package models

import "time"

type UserModel struct {
	ID           string    `gorm:"primaryKey;size:64"`
	ItsmeID      string    `gorm:"size:64;uniqueIndex;not null"`
	RegisteredAt time.Time `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}
