package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"mediticket/internal/shared/biztime"
)

// AllowedContentTypes is the upload allow-list. Anything else is
// rejected before a byte hits disk.
var AllowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
	"text/plain":      true,
}

// Attachment is a file associated with a ticket. The content lives on
// the local filesystem under StoredPath; only the metadata row is in
// the database.
type Attachment struct {
	id         string
	ticketID   string
	filename   string
	storedPath string
	uploadedAt time.Time
}

// NewAttachment creates the metadata record for an upload. The stored
// path is filled in by the storage layer once the file is written.
func NewAttachment(ticketID, filename string) (*Attachment, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}

	return &Attachment{
		id:         uuid.NewString(),
		ticketID:   ticketID,
		filename:   filename,
		uploadedAt: biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(id, ticketID, filename, storedPath string, uploadedAt time.Time) (*Attachment, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("attachment ID is required")
	}

	return &Attachment{
		id:         id,
		ticketID:   ticketID,
		filename:   filename,
		storedPath: storedPath,
		uploadedAt: uploadedAt,
	}, nil
}

func (a *Attachment) ID() string {
	return a.id
}

func (a *Attachment) TicketID() string {
	return a.ticketID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StoredPath() string {
	return a.storedPath
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetStoredPath(path string) error {
	if len(path) == 0 {
		return fmt.Errorf("stored path cannot be empty")
	}
	a.storedPath = path
	return nil
}
