package user

import (
	"fmt"
	"time"

	"mediticket/internal/shared/biztime"
)

// User is a patient identity record. The ID is an opaque string chosen
// by the registering caller; ItsmeID references the external identity
// provider and is the only mutable field.
type User struct {
	id           string
	itsmeID      string
	registeredAt time.Time
}

func NewUser(id, itsmeID string) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(itsmeID) == 0 {
		return nil, fmt.Errorf("itsme ID is required")
	}

	return &User{
		id:           id,
		itsmeID:      itsmeID,
		registeredAt: biztime.NowUTC(),
	}, nil
}

func ReconstructUser(id, itsmeID string, registeredAt time.Time) (*User, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &User{
		id:           id,
		itsmeID:      itsmeID,
		registeredAt: registeredAt,
	}, nil
}

func (u *User) ID() string {
	return u.id
}

func (u *User) ItsmeID() string {
	return u.itsmeID
}

func (u *User) RegisteredAt() time.Time {
	return u.registeredAt
}

func (u *User) ChangeItsmeID(itsmeID string) error {
	if len(itsmeID) == 0 {
		return fmt.Errorf("itsme ID cannot be empty")
	}
	u.itsmeID = itsmeID
	return nil
}
