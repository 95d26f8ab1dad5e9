package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/user"
	"haitch/internal/shared/authorization"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type RegisterUserCommand struct {
	Username   string
	Password   string
	Name       string
	Phone      string
	Role       string
	OperatorID uint
}

type RegisterUserResult struct {
	UserID    uint
	Username  string
	Name      string
	Role      string
	CreatedAt time.Time
}

type RegisterUserUseCase struct {
	userRepo    user.Repository
	historyRepo user.HistoryRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewRegisterUserUseCase(
	userRepo user.Repository,
	historyRepo user.HistoryRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:    userRepo,
		historyRepo: historyRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (*RegisterUserResult, error) {
	uc.logger.Infow("executing register user use case", "username", cmd.Username)

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check existing username", "username", cmd.Username, "error", err)
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("username already taken", cmd.Username)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := authorization.ParseUserRole(cmd.Role)
	newUser, err := user.NewUser(cmd.Username, hash, cmd.Name, cmd.Phone, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to persist user", "error", err)
		return nil, err
	}

	uc.recordHistory(ctx, newUser, cmd.OperatorID)

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "username", newUser.Username())

	return &RegisterUserResult{
		UserID:    newUser.ID(),
		Username:  newUser.Username(),
		Name:      newUser.Name(),
		Role:      string(newUser.Role()),
		CreatedAt: newUser.CreatedAt(),
	}, nil
}

func (uc *RegisterUserUseCase) validateCommand(cmd RegisterUserCommand) error {
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}
	if len(cmd.Password) < 6 {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	if cmd.Phone != "" && !user.IsValidPhone(cmd.Phone) {
		return errors.NewValidationError("invalid phone number")
	}
	return nil
}

func (uc *RegisterUserUseCase) recordHistory(ctx context.Context, u *user.User, operatorID uint) {
	entry := &user.HistoryEntry{
		UserID:     u.ID(),
		Action:     user.HistoryActionCreate,
		After:      userSnapshot(u),
		OperatorID: operatorID,
		CreatedAt:  time.Now(),
	}
	if err := uc.historyRepo.Record(ctx, entry); err != nil {
		uc.logger.Warnw("failed to record user history", "user_id", u.ID(), "error", err)
	}
}
