package usecases

import (
	"context"
	"io"

	"mediticket/internal/application/ticket/dto"
)

// TicketNotifier delivers the submission confirmation. Implementations
// are invoked fire-and-forget; a failure never reaches the caller of
// the create use case.
type TicketNotifier interface {
	NotifyTicketCreated(recipient, ticketID string) error
}

// FileStore persists attachment content outside the database.
type FileStore interface {
	Save(attachmentID, filename string, content io.Reader) (string, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error)
}

type AnswerTicketExecutor interface {
	Execute(ctx context.Context, cmd AnswerTicketCommand) (*AnswerTicketResult, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}

type MarkReadExecutor interface {
	Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error)
}

type AnnotateTicketExecutor interface {
	Execute(ctx context.Context, cmd AnnotateTicketCommand) (*AnnotateTicketResult, error)
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error)
}

type DashboardExecutor interface {
	Execute(ctx context.Context, query DashboardQuery) (*DashboardResult, error)
}

type ArchiveStaleExecutor interface {
	Execute(ctx context.Context, cmd ArchiveStaleCommand) (*ArchiveStaleResult, error)
}
