package user

import (
	"mediticket/internal/application/user/usecases"
)

type RegisterUserRequest struct {
	ID      string `json:"id" binding:"required"`
	ItsmeID string `json:"itsme_id" binding:"required"`
}

func (r RegisterUserRequest) ToCommand() usecases.RegisterUserCommand {
	return usecases.RegisterUserCommand{
		ID:      r.ID,
		ItsmeID: r.ItsmeID,
	}
}

type UpdateUserRequest struct {
	ItsmeID string `json:"itsme_id" binding:"required"`
}
