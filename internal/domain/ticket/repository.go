package ticket

import (
	"context"
	"time"
)

// Filter narrows ticket listings. Nil fields are ignored. Results are
// always ordered by creation time, newest first.
type Filter struct {
	Status *Status
	UserID *string
	Limit  int
}

// Counts is the dashboard aggregate.
type Counts struct {
	Total     int64
	Submitted int64
	Answered  int64
}

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, error)
	CountByStatus(ctx context.Context) (*Counts, error)

	// CloseStale force-transitions submitted tickets created before the
	// cutoff to answered with a single conditional update, so a
	// concurrent answer and a concurrent sweep cannot both apply.
	// It returns the number of tickets closed.
	CloseStale(ctx context.Context, cutoff time.Time) (int64, error)

	SaveAnswer(ctx context.Context, a *Answer) error
	FindAnswerByTicketID(ctx context.Context, ticketID string) (*Answer, error)

	SaveAttachment(ctx context.Context, a *Attachment) error
	// FindAttachment looks an attachment up by the (ticket, attachment)
	// id pair; an attachment that exists under a different ticket is
	// not found.
	FindAttachment(ctx context.Context, ticketID, attachmentID string) (*Attachment, error)
}
