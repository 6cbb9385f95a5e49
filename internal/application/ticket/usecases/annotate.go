package usecases

import (
	"context"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type AnnotateTicketCommand struct {
	TicketID   string
	Annotation string
}

type AnnotateTicketResult struct {
	Status string `json:"status"`
}

type AnnotateTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAnnotateTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AnnotateTicketUseCase {
	return &AnnotateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute overwrites the staff annotation. An empty string clears it.
func (uc *AnnotateTicketUseCase) Execute(ctx context.Context, cmd AnnotateTicketCommand) (*AnnotateTicketResult, error) {
	if len(cmd.TicketID) == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	t.Annotate(cmd.Annotation)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to annotate ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket annotated", "ticket_id", cmd.TicketID)

	return &AnnotateTicketResult{Status: "annotatie toegevoegd"}, nil
}
