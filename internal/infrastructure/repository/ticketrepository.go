package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/infrastructure/persistence/mappers"
	"mediticket/internal/infrastructure/persistence/models"
	"mediticket/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("status", "read", "annotation").
		Updates(map[string]any{
			"status":     model.Status,
			"read":       model.Read,
			"annotation": model.Annotation,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}

	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var modelsList []models.TicketModel
	if err := query.Find(&modelsList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelsList))
	for i := range modelsList {
		t, err := r.mapper.ToDomain(&modelsList[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context) (*ticket.Counts, error) {
	var counts ticket.Counts

	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Count(&counts.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("status = ?", ticket.StatusSubmitted.String()).
		Count(&counts.Submitted).Error; err != nil {
		return nil, fmt.Errorf("failed to count submitted tickets: %w", err)
	}
	if err := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("status = ?", ticket.StatusAnswered.String()).
		Count(&counts.Answered).Error; err != nil {
		return nil, fmt.Errorf("failed to count answered tickets: %w", err)
	}

	return &counts, nil
}

// CloseStale applies the archival transition with a single conditional
// update. The status guard in the WHERE clause means a ticket answered
// between read and write is never re-closed by the sweep.
func (r *TicketRepository) CloseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("status = ? AND created_at < ?", ticket.StatusSubmitted.String(), cutoff).
		Update("status", ticket.StatusAnswered.String())
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close stale tickets: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TicketRepository) SaveAnswer(ctx context.Context, a *ticket.Answer) error {
	model := r.mapper.AnswerToModel(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save answer: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindAnswerByTicketID(ctx context.Context, ticketID string) (*ticket.Answer, error) {
	var model models.AnswerModel
	if err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("answer not found")
		}
		return nil, fmt.Errorf("failed to find answer: %w", err)
	}
	return r.mapper.AnswerToDomain(&model)
}

func (r *TicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}
	return nil
}

func (r *TicketRepository) FindAttachment(ctx context.Context, ticketID, attachmentID string) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND ticket_id = ?", attachmentID, ticketID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("attachment not found")
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}
	return r.mapper.AttachmentToDomain(&model)
}
