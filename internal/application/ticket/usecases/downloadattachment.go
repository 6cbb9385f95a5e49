package usecases

import (
	"context"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	TicketID     string
	AttachmentID string
}

type DownloadAttachmentResult struct {
	Filename   string
	StoredPath string
}

type DownloadAttachmentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDownloadAttachmentUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute resolves an attachment by the (ticket, attachment) pair so a
// valid attachment ID paired with the wrong ticket still yields a 404.
func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	if len(query.TicketID) == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if len(query.AttachmentID) == 0 {
		return nil, errors.NewValidationError("attachment ID is required")
	}

	attachment, err := uc.ticketRepo.FindAttachment(ctx, query.TicketID, query.AttachmentID)
	if err != nil {
		return nil, err
	}

	return &DownloadAttachmentResult{
		Filename:   attachment.Filename(),
		StoredPath: attachment.StoredPath(),
	}, nil
}
