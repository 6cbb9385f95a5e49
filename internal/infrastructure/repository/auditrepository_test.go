package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediticket/internal/domain/audit"
	"mediticket/internal/infrastructure/persistence/models"
)

func TestAuditRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)

	entry := audit.NewEntry("/tickets/nieuw", "POST", "10.0.0.1", "curl/8.0")
	require.NoError(t, repo.Save(context.Background(), entry))

	var model models.AuditLogModel
	require.NoError(t, db.Where("id = ?", entry.ID()).First(&model).Error)
	assert.Equal(t, "/tickets/nieuw", model.Path)
	assert.Equal(t, "POST", model.Method)
	assert.Equal(t, "10.0.0.1", model.ClientIP)
	assert.Equal(t, "curl/8.0", model.UserAgent)
	assert.WithinDuration(t, entry.OccurredAt(), model.OccurredAt, 0)
}
