package mappers

import (
	"mediticket/internal/domain/ticket"
	"mediticket/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities
// and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	AnswerToModel(a *ticket.Answer) *models.AnswerModel
	AnswerToDomain(model *models.AnswerModel) (*ticket.Answer, error)

	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:         t.ID(),
		UserID:     t.UserID(),
		Question:   t.Question(),
		Status:     t.Status().String(),
		Read:       t.Read(),
		Annotation: t.Annotation(),
		CreatedAt:  t.CreatedAt(),
	}
}

func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Question,
		ticket.Status(model.Status),
		model.Read,
		model.Annotation,
		model.CreatedAt,
	)
}

func (m *ticketMapper) AnswerToModel(a *ticket.Answer) *models.AnswerModel {
	return &models.AnswerModel{
		ID:       a.ID(),
		TicketID: a.TicketID(),
		Body:     a.Body(),
		SentAt:   a.SentAt(),
	}
}

func (m *ticketMapper) AnswerToDomain(model *models.AnswerModel) (*ticket.Answer, error) {
	return ticket.ReconstructAnswer(model.ID, model.TicketID, model.Body, model.SentAt)
}

func (m *ticketMapper) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		Filename:   a.Filename(),
		StoredPath: a.StoredPath(),
		UploadedAt: a.UploadedAt(),
	}
}

func (m *ticketMapper) AttachmentToDomain(model *models.AttachmentModel) (*ticket.Attachment, error) {
	return ticket.ReconstructAttachment(model.ID, model.TicketID, model.Filename, model.StoredPath, model.UploadedAt)
}
