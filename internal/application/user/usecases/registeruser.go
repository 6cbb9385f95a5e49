package usecases

import (
	"context"

	"mediticket/internal/application/user/dto"
	"mediticket/internal/domain/user"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type RegisterUserCommand struct {
	ID      string
	ItsmeID string
}

type RegisterUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRegisterUserUseCase(userRepo user.Repository, logger logger.Interface) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*dto.UserDTO, error) {
	if len(cmd.ID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}
	if len(cmd.ItsmeID) == 0 {
		return nil, errors.NewValidationError("itsme_id is required")
	}

	newUser, err := user.NewUser(cmd.ID, cmd.ItsmeID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save user", "user_id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return dto.FromUser(newUser), nil
}
