package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mediticket/internal/shared/biztime"
)

// Status is the lifecycle state of a ticket. The wire values are the
// Dutch terms the patient-facing application uses.
type Status string

const (
	StatusSubmitted Status = "ingediend"
	StatusAnswered  Status = "beantwoord"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusSubmitted || s == StatusAnswered
}

// Ticket is a patient-submitted question awaiting or having received a
// staff answer. A ticket has at most one answer and zero or more
// attachments; an answered ticket may legitimately have no answer row
// when it was closed by the archival sweep.
type Ticket struct {
	id         string
	userID     string
	question   string
	status     Status
	read       bool
	annotation *string
	createdAt  time.Time
}

func NewTicket(userID, question string) (*Ticket, error) {
	if len(userID) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(question) == 0 {
		return nil, fmt.Errorf("question text is required")
	}

	return &Ticket{
		id:        uuid.NewString(),
		userID:    userID,
		question:  question,
		status:    StatusSubmitted,
		read:      false,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructTicket(
	id string,
	userID string,
	question string,
	status Status,
	read bool,
	annotation *string,
	createdAt time.Time,
) (*Ticket, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:         id,
		userID:     userID,
		question:   question,
		status:     status,
		read:       read,
		annotation: annotation,
		createdAt:  createdAt,
	}, nil
}

func (t *Ticket) ID() string {
	return t.id
}

func (t *Ticket) UserID() string {
	return t.userID
}

func (t *Ticket) Question() string {
	return t.question
}

func (t *Ticket) Status() Status {
	return t.status
}

func (t *Ticket) Read() bool {
	return t.read
}

func (t *Ticket) Annotation() *string {
	return t.annotation
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// MarkAnswered transitions the ticket to the answered state. The
// transition is one-way; answering an already answered ticket is a
// no-op.
func (t *Ticket) MarkAnswered() {
	t.status = StatusAnswered
}

func (t *Ticket) SetRead(read bool) {
	t.read = read
}

func (t *Ticket) Annotate(annotation string) {
	t.annotation = &annotation
}
