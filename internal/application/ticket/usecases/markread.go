package usecases

import (
	"context"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type MarkReadCommand struct {
	TicketID string
	Read     bool
}

type MarkReadResult struct {
	Status string `json:"status"`
}

type MarkReadUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewMarkReadUseCase(ticketRepo ticket.Repository, logger logger.Interface) *MarkReadUseCase {
	return &MarkReadUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *MarkReadUseCase) Execute(ctx context.Context, cmd MarkReadCommand) (*MarkReadResult, error) {
	if len(cmd.TicketID) == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	// Idempotent: marking an already-read ticket just rewrites the flag.
	t.SetRead(cmd.Read)

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to mark ticket read", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket marked read", "ticket_id", cmd.TicketID)

	return &MarkReadResult{Status: "bijgewerkt"}, nil
}
