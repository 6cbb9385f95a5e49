package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mediticket/internal/shared/biztime"
)

// Answer is the one permitted staff response to a ticket. There is no
// update or delete path; an answer is written once.
type Answer struct {
	id       string
	ticketID string
	body     string
	sentAt   time.Time
}

func NewAnswer(ticketID, body string) (*Answer, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("answer text is required")
	}

	return &Answer{
		id:       uuid.NewString(),
		ticketID: ticketID,
		body:     body,
		sentAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAnswer(id, ticketID, body string, sentAt time.Time) (*Answer, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("answer ID is required")
	}

	return &Answer{
		id:       id,
		ticketID: ticketID,
		body:     body,
		sentAt:   sentAt,
	}, nil
}

func (a *Answer) ID() string {
	return a.id
}

func (a *Answer) TicketID() string {
	return a.ticketID
}

func (a *Answer) Body() string {
	return a.body
}

func (a *Answer) SentAt() time.Time {
	return a.sentAt
}
