package usecases

import (
	"context"

	"mediticket/internal/application/ticket/dto"
	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/logger"
)

// ListTicketsQuery selects one of the three list views: everything,
// only unanswered, or a single user's tickets.
type ListTicketsQuery struct {
	OnlyUnanswered bool
	UserID         string
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.Filter{}

	if query.OnlyUnanswered {
		status := ticket.StatusSubmitted
		filter.Status = &status
	}
	if query.UserID != "" {
		userID := query.UserID
		filter.UserID = &userID
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return dto.FromTickets(tickets), nil
}
