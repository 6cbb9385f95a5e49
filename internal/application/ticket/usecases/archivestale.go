package usecases

import (
	"context"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/biztime"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type ArchiveStaleCommand struct {
	MaxAgeDays int
}

type ArchiveStaleResult struct {
	Closed int64
}

type ArchiveStaleUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewArchiveStaleUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ArchiveStaleUseCase {
	return &ArchiveStaleUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute force-closes submitted tickets older than the cutoff. Closed
// tickets get no answer row; they just stop showing up as unanswered.
func (uc *ArchiveStaleUseCase) Execute(ctx context.Context, cmd ArchiveStaleCommand) (*ArchiveStaleResult, error) {
	if cmd.MaxAgeDays <= 0 {
		return nil, errors.NewValidationError("max age must be positive")
	}

	cutoff := biztime.DaysAgoUTC(cmd.MaxAgeDays)
	closed, err := uc.ticketRepo.CloseStale(ctx, cutoff)
	if err != nil {
		uc.logger.Errorw("archival sweep failed", "error", err)
		return nil, err
	}

	if closed > 0 {
		uc.logger.Infow("archival sweep closed stale tickets", "closed", closed, "cutoff", cutoff)
	}

	return &ArchiveStaleResult{Closed: closed}, nil
}
