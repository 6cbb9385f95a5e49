package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type ExportTicketsQuery struct{}

type ExportTicketsResult struct {
	Filename string
	Content  []byte
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewExportTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

var exportHeader = []string{"ID", "Gebruiker", "Vraag", "Status", "Datum", "Gelezen", "Annotatie"}

// Execute renders every ticket as one CSV row, header first.
func (uc *ExportTicketsUseCase) Execute(ctx context.Context, _ ExportTicketsQuery) (*ExportTicketsResult, error) {
	tickets, err := uc.ticketRepo.List(ctx, ticket.Filter{})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, errors.NewInternalError("failed to write export header")
	}
	for _, t := range tickets {
		annotation := ""
		if t.Annotation() != nil {
			annotation = *t.Annotation()
		}
		row := []string{
			t.ID(),
			t.UserID(),
			t.Question(),
			string(t.Status()),
			t.CreatedAt().Format("2006-01-02 15:04:05"),
			strconv.FormatBool(t.Read()),
			annotation,
		}
		if err := w.Write(row); err != nil {
			return nil, errors.NewInternalError("failed to write export row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.NewInternalError("failed to flush export")
	}

	uc.logger.Infow("tickets exported", "count", len(tickets))

	return &ExportTicketsResult{
		Filename: "tickets.csv",
		Content:  buf.Bytes(),
	}, nil
}
