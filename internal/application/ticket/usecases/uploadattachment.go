package usecases

import (
	"context"
	"io"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type UploadAttachmentCommand struct {
	TicketID    string
	Filename    string
	ContentType string
	Content     io.Reader
}

type UploadAttachmentResult struct {
	AttachmentID string `json:"bijlage_id"`
	StoredPath   string `json:"bestandspad"`
}

type UploadAttachmentUseCase struct {
	ticketRepo ticket.Repository
	fileStore  FileStore
	logger     logger.Interface
}

func NewUploadAttachmentUseCase(
	ticketRepo ticket.Repository,
	fileStore FileStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		ticketRepo: ticketRepo,
		fileStore:  fileStore,
		logger:     logger,
	}
}

// Execute validates the content type before anything touches disk.
// The file write and the metadata row are not coupled in a
// transaction: a crash between the two leaves an orphaned file or a
// dangling row.
func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error) {
	if len(cmd.TicketID) == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !ticket.AllowedContentTypes[cmd.ContentType] {
		return nil, errors.NewBadRequestError("bestandstype niet toegestaan")
	}

	attachment, err := ticket.NewAttachment(cmd.TicketID, cmd.Filename)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	storedPath, err := uc.fileStore.Save(attachment.ID(), cmd.Filename, cmd.Content)
	if err != nil {
		uc.logger.Errorw("failed to store attachment file", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if err := attachment.SetStoredPath(storedPath); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	if err := uc.ticketRepo.SaveAttachment(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment record", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"ticket_id", cmd.TicketID,
		"attachment_id", attachment.ID(),
		"content_type", cmd.ContentType)

	return &UploadAttachmentResult{
		AttachmentID: attachment.ID(),
		StoredPath:   storedPath,
	}, nil
}
