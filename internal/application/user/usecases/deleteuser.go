package usecases

import (
	"context"

	"mediticket/internal/domain/user"
	"mediticket/internal/shared/errors"
	"mediticket/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID string
}

type DeleteUserResult struct {
	Status string `json:"status"`
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

// Execute removes the user record. Tickets submitted by the user are
// intentionally left untouched.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	if len(cmd.UserID) == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID)

	return &DeleteUserResult{Status: "verwijderd"}, nil
}
