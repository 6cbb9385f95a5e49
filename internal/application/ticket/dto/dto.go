// Package dto carries the ticket wire representations. JSON field
// names are the Dutch terms of the patient-facing API.
package dto

import (
	"time"

	"mediticket/internal/domain/ticket"
)

type TicketDTO struct {
	ID         string    `json:"id"`
	UserID     string    `json:"gebruiker_id"`
	Question   string    `json:"vraagtekst"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"aanmaakdatum"`
	Read       bool      `json:"gelezen"`
	Annotation *string   `json:"annotatie,omitempty"`
}

func FromTicket(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:         t.ID(),
		UserID:     t.UserID(),
		Question:   t.Question(),
		Status:     t.Status().String(),
		CreatedAt:  t.CreatedAt(),
		Read:       t.Read(),
		Annotation: t.Annotation(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

type AnswerDTO struct {
	ID       string    `json:"id"`
	TicketID string    `json:"vraag_id"`
	Body     string    `json:"antwoordtekst"`
	SentAt   time.Time `json:"verzend_datum"`
}

func FromAnswer(a *ticket.Answer) *AnswerDTO {
	return &AnswerDTO{
		ID:       a.ID(),
		TicketID: a.TicketID(),
		Body:     a.Body(),
		SentAt:   a.SentAt(),
	}
}
