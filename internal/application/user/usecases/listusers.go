package usecases

import (
	"context"
	"fmt"

	"haitch/internal/domain/user"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
	Username string
	Name     string
	Role     string
}

type ListUsersResult struct {
	Users []*UserDetail
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	page, pageSize := utils.NormalizePagination(query.Page, query.PageSize)

	filter := user.ListFilter{
		Page:     page,
		PageSize: pageSize,
		Username: query.Username,
		Name:     query.Name,
		Role:     query.Role,
	}

	users, total, err := uc.userRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	details := make([]*UserDetail, 0, len(users))
	for _, u := range users {
		details = append(details, toUserDetail(u))
	}

	return &ListUsersResult{Users: details, Total: total}, nil
}
