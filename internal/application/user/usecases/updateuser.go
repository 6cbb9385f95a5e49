package usecases

import (
	"context"

	"mediticket/internal/application/user/dto"
	"mediticket/internal/domain/user"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID  string
	ItsmeID string
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*dto.UserDTO, error) {
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.ItsmeID) == 0 {
		return nil, errors.NewValidationError("itsme_id is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.ChangeItsmeID(cmd.ItsmeID); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID)

	return dto.FromUser(u), nil
}
