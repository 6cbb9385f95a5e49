package models

import "time"

type AuditLogModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Path       string    `gorm:"size:512;not null"`
	Method     string    `gorm:"size:10;not null"`
	ClientIP   string    `gorm:"size:64"`
	UserAgent  string    `gorm:"size:512"`
	OccurredAt time.Time `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_log"
}
