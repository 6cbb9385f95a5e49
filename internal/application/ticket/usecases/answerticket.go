package usecases

import (
	"context"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type AnswerTicketCommand struct {
	TicketID string
	Body     string
}

type AnswerTicketResult struct {
	AnswerID string `json:"antwoord_id"`
	Status   string `json:"status"`
}

type AnswerTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAnswerTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AnswerTicketUseCase {
	return &AnswerTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

// Execute records the staff answer. The answer row is stored even when
// the referenced ticket does not resolve; only the status transition
// is skipped in that case. That preserves what the staff wrote at the
// cost of a dangling reference.
func (uc *AnswerTicketUseCase) Execute(ctx context.Context, cmd AnswerTicketCommand) (*AnswerTicketResult, error) {
	if len(cmd.TicketID) == 0 {
		return nil, errors.NewValidationError("vraag_id is required")
	}
	if len(cmd.Body) == 0 {
		return nil, errors.NewValidationError("antwoordtekst is required")
	}

	answer, err := ticket.NewAnswer(cmd.TicketID, cmd.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveAnswer(ctx, answer); err != nil {
		uc.logger.Errorw("failed to save answer", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("answer stored for unknown ticket", "ticket_id", cmd.TicketID)
			return &AnswerTicketResult{
				AnswerID: answer.ID(),
				Status:   ticket.StatusAnswered.String(),
			}, nil
		}
		return nil, err
	}

	t.MarkAnswered()
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to mark ticket answered", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket answered", "ticket_id", cmd.TicketID, "answer_id", answer.ID())

	return &AnswerTicketResult{
		AnswerID: answer.ID(),
		Status:   t.Status().String(),
	}, nil
}
