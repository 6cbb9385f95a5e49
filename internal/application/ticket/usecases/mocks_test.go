package usecases

import (
	"context"
	"io"
	"time"

	"mediticket/internal/domain/ticket"
	"mediticket/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc             func(ctx context.Context, id string) (*ticket.Ticket, error)
	ListFunc                 func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error)
	CountByStatusFunc        func(ctx context.Context) (*ticket.Counts, error)
	CloseStaleFunc           func(ctx context.Context, cutoff time.Time) (int64, error)
	SaveAnswerFunc           func(ctx context.Context, a *ticket.Answer) error
	FindAnswerByTicketIDFunc func(ctx context.Context, ticketID string) (*ticket.Answer, error)
	SaveAttachmentFunc       func(ctx context.Context, a *ticket.Attachment) error
	FindAttachmentFunc       func(ctx context.Context, ticketID, attachmentID string) (*ticket.Attachment, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (*ticket.Counts, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return &ticket.Counts{}, nil
}

func (m *mockTicketRepository) CloseStale(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.CloseStaleFunc != nil {
		return m.CloseStaleFunc(ctx, cutoff)
	}
	return 0, nil
}

func (m *mockTicketRepository) SaveAnswer(ctx context.Context, a *ticket.Answer) error {
	if m.SaveAnswerFunc != nil {
		return m.SaveAnswerFunc(ctx, a)
	}
	return nil
}

func (m *mockTicketRepository) FindAnswerByTicketID(ctx context.Context, ticketID string) (*ticket.Answer, error) {
	if m.FindAnswerByTicketIDFunc != nil {
		return m.FindAnswerByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) SaveAttachment(ctx context.Context, a *ticket.Attachment) error {
	if m.SaveAttachmentFunc != nil {
		return m.SaveAttachmentFunc(ctx, a)
	}
	return nil
}

func (m *mockTicketRepository) FindAttachment(ctx context.Context, ticketID, attachmentID string) (*ticket.Attachment, error) {
	if m.FindAttachmentFunc != nil {
		return m.FindAttachmentFunc(ctx, ticketID, attachmentID)
	}
	return nil, nil
}

type mockNotifier struct {
	NotifyTicketCreatedFunc func(recipient, ticketID string) error
}

func (m *mockNotifier) NotifyTicketCreated(recipient, ticketID string) error {
	if m.NotifyTicketCreatedFunc != nil {
		return m.NotifyTicketCreatedFunc(recipient, ticketID)
	}
	return nil
}

type mockFileStore struct {
	SaveFunc func(attachmentID, filename string, content io.Reader) (string, error)
}

func (m *mockFileStore) Save(attachmentID, filename string, content io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(attachmentID, filename, content)
	}
	return "/tmp/" + attachmentID + "_" + filename, nil
}

type mockLogger struct {
	DebugwFunc func(msg string, keysAndValues ...any)
	InfowFunc  func(msg string, keysAndValues ...any)
	WarnwFunc  func(msg string, keysAndValues ...any)
	ErrorwFunc func(msg string, keysAndValues ...any)
	FatalwFunc func(msg string, keysAndValues ...any)
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...any) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...any) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...any) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...any) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Fatalw(msg string, keysAndValues ...any) {
	if m.FatalwFunc != nil {
		m.FatalwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}
