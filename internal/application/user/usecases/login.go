package usecases

import (
	"context"
	"fmt"

	"haitch/internal/domain/user"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	UserID      uint
	Username    string
	Name        string
	Role        string
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Generic error when the user does not exist so usernames cannot be probed
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("failed login attempt", "username", cmd.Username)
		return nil, errors.NewUnauthorizedError("invalid username or password")
	}

	token, expiresIn, err := uc.tokens.Generate(existingUser.ID(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", existingUser.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginResult{
		UserID:      existingUser.ID(),
		Username:    existingUser.Username(),
		Name:        existingUser.Name(),
		Role:        string(existingUser.Role()),
		AccessToken: token,
		ExpiresIn:   expiresIn,
	}, nil
}
