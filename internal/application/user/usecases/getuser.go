package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/user"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type UserDetail struct {
	UserID    uint
	Username  string
	Name      string
	Phone     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, userID uint) (*UserDetail, error) {
	u, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return toUserDetail(u), nil
}

func toUserDetail(u *user.User) *UserDetail {
	return &UserDetail{
		UserID:    u.ID(),
		Username:  u.Username(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Role:      string(u.Role()),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}
