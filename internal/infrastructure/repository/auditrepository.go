package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mediticket/internal/domain/audit"
	"mediticket/internal/infrastructure/persistence/models"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Save(ctx context.Context, e *audit.Entry) error {
	model := &models.AuditLogModel{
		ID:         e.ID(),
		Path:       e.Path(),
		Method:     e.Method(),
		ClientIP:   e.ClientIP(),
		UserAgent:  e.UserAgent(),
		OccurredAt: e.OccurredAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save audit entry: %w", err)
	}
	return nil
}
