package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/user"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID     uint
	OperatorID uint
}

type DeleteUserUseCase struct {
	userRepo    user.Repository
	historyRepo user.HistoryRepository
	logger      logger.Interface
}

func NewDeleteUserUseCase(
	userRepo user.Repository,
	historyRepo user.HistoryRepository,
	logger logger.Interface,
) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		logger:      logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	uc.logger.Infow("executing delete user use case", "user_id", cmd.UserID)

	if cmd.UserID == cmd.OperatorID {
		return errors.NewValidationError("cannot delete your own account")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return errors.NewNotFoundError("user not found")
	}

	before := userSnapshot(existingUser)

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		return err
	}

	entry := &user.HistoryEntry{
		UserID:     cmd.UserID,
		Action:     user.HistoryActionDelete,
		Before:     before,
		OperatorID: cmd.OperatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user history", "user_id", cmd.UserID, "error", err)
	}

	uc.logger.Infow("user deleted successfully", "user_id", cmd.UserID)
	return nil
}
