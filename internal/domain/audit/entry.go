// Package audit holds the append-only request audit trail. Entries are
// written best-effort after each response; nothing in the application
// reads them back.
package audit

import (
	"time"

	"github.com/google/uuid"

	"mediticket/internal/shared/biztime"
)

type Entry struct {
	id         string
	path       string
	method     string
	clientIP   string
	userAgent  string
	occurredAt time.Time
}

func NewEntry(path, method, clientIP, userAgent string) *Entry {
	return &Entry{
		id:         uuid.NewString(),
		path:       path,
		method:     method,
		clientIP:   clientIP,
		userAgent:  userAgent,
		occurredAt: biztime.NowUTC(),
	}
}

func (e *Entry) ID() string {
	return e.id
}

func (e *Entry) Path() string {
	return e.path
}

func (e *Entry) Method() string {
	return e.method
}

func (e *Entry) ClientIP() string {
	return e.clientIP
}

func (e *Entry) UserAgent() string {
	return e.userAgent
}

func (e *Entry) OccurredAt() time.Time {
	return e.occurredAt
}
