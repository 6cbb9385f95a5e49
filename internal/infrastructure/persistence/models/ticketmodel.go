package models

import "time"

type TicketModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	UserID     string    `gorm:"size:64;not null;index"`
	Question   string    `gorm:"type:text;not null"`
	Status     string    `gorm:"size:20;not null;index"`
	Read       bool      `gorm:"not null;default:false"`
	Annotation *string   `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"not null;index"`

	// Note: no foreign key constraints or associations. Relationships
	// are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type AnswerModel struct {
	ID       string    `gorm:"primaryKey;size:36"`
	TicketID string    `gorm:"size:36;not null;index"`
	Body     string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null"`
}

func (AnswerModel) TableName() string {
	return "answers"
}

type AttachmentModel struct {
	ID         string    `gorm:"primaryKey;size:36"`
	TicketID   string    `gorm:"size:36;not null;index"`
	Filename   string    `gorm:"size:255;not null"`
	StoredPath string    `gorm:"size:512;not null"`
	UploadedAt time.Time `gorm:"not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}
