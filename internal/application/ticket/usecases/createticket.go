package usecases

import (
	"context"

	"mediticket/internal/application/ticket/dto"
	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/goroutine"
	"mediticket/internal/shared/logger"
)

type CreateTicketCommand struct {
	UserID   string
	Question string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	notifier   TicketNotifier
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	notifier TicketNotifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("gebruiker_id is required")
	}
	if len(cmd.Question) == 0 {
		return nil, errors.NewValidationError("vraagtekst is required")
	}

	newTicket, err := ticket.NewTicket(cmd.UserID, cmd.Question)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "user_id", newTicket.UserID())

	// Ticket creation never fails because of the notification; the
	// send happens off the request path and errors are only logged.
	ticketID := newTicket.ID()
	recipient := newTicket.UserID()
	goroutine.SafeGo(uc.logger, "ticket-created-notification", func() {
		if err := uc.notifier.NotifyTicketCreated(recipient, ticketID); err != nil {
			uc.logger.Warnw("ticket notification failed", "ticket_id", ticketID, "error", err)
		}
	})

	return dto.FromTicket(newTicket), nil
}
