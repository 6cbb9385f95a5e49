package dto

import (
	"time"

	"mediticket/internal/domain/user"
)

type UserDTO struct {
	ID           string    `json:"id"`
	ItsmeID      string    `json:"itsme_id"`
	RegisteredAt time.Time `json:"registratie_datum"`
}

func FromUser(u *user.User) *UserDTO {
	return &UserDTO{
		ID:           u.ID(),
		ItsmeID:      u.ItsmeID(),
		RegisteredAt: u.RegisteredAt(),
	}
}

func FromUsers(users []*user.User) []*UserDTO {
	out := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}
