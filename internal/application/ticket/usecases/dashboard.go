package usecases

import (
	"context"
	"time"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/logger"
)

const (
	recentTicketLimit  = 5
	questionPreviewLen = 50
)

type DashboardQuery struct{}

type RecentTicket struct {
	ID       string    `json:"id"`
	Date     time.Time `json:"datum"`
	Question string    `json:"vraag"`
}

type DashboardResult struct {
	Total    int64          `json:"totaal_tickets"`
	Open     int64          `json:"open"`
	Answered int64          `json:"beantwoord"`
	Recent   []RecentTicket `json:"laatste_5"`
}

type DashboardUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDashboardUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DashboardUseCase {
	return &DashboardUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context, _ DashboardQuery) (*DashboardResult, error) {
	counts, err := uc.ticketRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := uc.ticketRepo.List(ctx, ticket.Filter{Limit: recentTicketLimit})
	if err != nil {
		return nil, err
	}

	result := &DashboardResult{
		Total:    counts.Total,
		Open:     counts.Submitted,
		Answered: counts.Answered,
		Recent:   make([]RecentTicket, 0, len(recent)),
	}
	for _, t := range recent {
		result.Recent = append(result.Recent, RecentTicket{
			ID:       t.ID(),
			Date:     t.CreatedAt(),
			Question: truncateQuestion(t.Question()),
		})
	}

	return result, nil
}

func truncateQuestion(q string) string {
	runes := []rune(q)
	if len(runes) <= questionPreviewLen {
		return q
	}
	return string(runes[:questionPreviewLen])
}
