package ticket

import (
	"mediticket/internal/application/ticket/usecases"
)

type CreateTicketRequest struct {
	UserID   string `json:"gebruiker_id" binding:"required"`
	Question string `json:"vraagtekst" binding:"required"`
}

func (r CreateTicketRequest) ToCommand() usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		UserID:   r.UserID,
		Question: r.Question,
	}
}

type AnswerTicketRequest struct {
	TicketID string `json:"vraag_id" binding:"required"`
	Body     string `json:"antwoordtekst" binding:"required"`
}

func (r AnswerTicketRequest) ToCommand() usecases.AnswerTicketCommand {
	return usecases.AnswerTicketCommand{
		TicketID: r.TicketID,
		Body:     r.Body,
	}
}

type MarkReadRequest struct {
	Read *bool `json:"gelezen" binding:"required"`
}

type AnnotateRequest struct {
	Annotation string `json:"annotatie" binding:"required"`
}
