package usecases

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"haitch/internal/domain/user"
	"haitch/internal/shared/authorization"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type UpdateUserCommand struct {
	UserID     uint
	Name       string
	Phone      string
	Role       string
	Password   string
	OperatorID uint
}

type UpdateUserUseCase struct {
	userRepo    user.Repository
	historyRepo user.HistoryRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewUpdateUserUseCase(
	userRepo user.Repository,
	historyRepo user.HistoryRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*UserDetail, error) {
	uc.logger.Infow("executing update user use case", "user_id", cmd.UserID)

	existingUser, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existingUser == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	before := userSnapshot(existingUser)
	action := user.HistoryActionUpdate

	if err := existingUser.UpdateProfile(cmd.Name, cmd.Phone); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.Role != "" {
		role := authorization.ParseUserRole(cmd.Role)
		if err := existingUser.ChangeRole(role); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Password != "" {
		if len(cmd.Password) < 6 {
			return nil, errors.NewValidationError("password must be at least 6 characters")
		}
		hash, err := uc.hasher.Hash(cmd.Password)
		if err != nil {
			uc.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := existingUser.ChangePassword(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		action = user.HistoryActionPasswordChange
	}

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.recordHistory(ctx, existingUser, action, before, cmd.OperatorID)

	uc.logger.Infow("user updated successfully", "user_id", existingUser.ID())
	return toUserDetail(existingUser), nil
}

func (uc *UpdateUserUseCase) recordHistory(ctx context.Context, u *user.User, action string, before []byte, operatorID uint) {
	entry := &user.HistoryEntry{
		UserID:     u.ID(),
		Action:     action,
		Before:     before,
		After:      userSnapshot(u),
		OperatorID: operatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user history", "user_id", u.ID(), "error", err)
	}
}

func userSnapshot(u *user.User) []byte {
	snapshot, err := json.Marshal(map[string]interface{}{
		"username": u.Username(),
		"name":     u.Name(),
		"phone":    u.Phone(),
		"role":     string(u.Role()),
	})
	if err != nil {
		return nil
	}
	return snapshot
}
