package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediticket/internal/domain/ticket"
	apperrors "mediticket/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, id string, status ticket.Status) *ticket.Ticket {
	t.Helper()
	tkt, err := ticket.ReconstructTicket(id, "user-1", "vraag", status, false, nil, time.Now().UTC())
	require.NoError(t, err)
	return tkt
}

func TestMarkReadUseCase_Execute(t *testing.T) {
	existing := reconstructTestTicket(t, "ticket-1", ticket.StatusSubmitted)

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewMarkReadUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), MarkReadCommand{TicketID: "ticket-1", Read: true})

	require.NoError(t, err)
	assert.Equal(t, "bijgewerkt", result.Status)
	require.NotNil(t, updated)
	assert.True(t, updated.Read())
}

func TestMarkReadUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewMarkReadUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), MarkReadCommand{TicketID: "missing", Read: true})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestAnnotateTicketUseCase_Execute(t *testing.T) {
	existing := reconstructTestTicket(t, "ticket-1", ticket.StatusSubmitted)

	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return existing, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			updated = tkt
			return nil
		},
	}

	useCase := NewAnnotateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AnnotateTicketCommand{
		TicketID:   "ticket-1",
		Annotation: "doorverwezen naar specialist",
	})

	require.NoError(t, err)
	assert.Equal(t, "annotatie toegevoegd", result.Status)
	require.NotNil(t, updated)
	require.NotNil(t, updated.Annotation())
	assert.Equal(t, "doorverwezen naar specialist", *updated.Annotation())
}

func TestAnnotateTicketUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewAnnotateTicketUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AnnotateTicketCommand{
		TicketID:   "missing",
		Annotation: "notitie",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}
