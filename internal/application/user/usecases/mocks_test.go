package usecases

import (
	"context"
	"fmt"

	"haitch/internal/domain/user"
	"haitch/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc           func(ctx context.Context, u *user.User) error
	GetByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	GetByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	UpdateFunc           func(ctx context.Context, u *user.User) error
	DeleteFunc           func(ctx context.Context, id uint) error
	ListFunc             func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

type mockHistoryRepository struct {
	RecordFunc       func(ctx context.Context, entry *user.HistoryEntry) error
	ListByUserIDFunc func(ctx context.Context, userID uint) ([]*user.HistoryEntry, error)

	recorded []*user.HistoryEntry
}

func (m *mockHistoryRepository) Record(ctx context.Context, entry *user.HistoryEntry) error {
	m.recorded = append(m.recorded, entry)
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, entry)
	}
	return nil
}

func (m *mockHistoryRepository) ListByUserID(ctx context.Context, userID uint) ([]*user.HistoryEntry, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	if "hashed:"+password != hash {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role authorization.UserRole) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", 3600, nil
}

func reconstructTestUser(id uint, username, password string, role authorization.UserRole) *user.User {
	u, err := user.ReconstructUser(id, username, "hashed:"+password, "Test User", "13800138000", role, testTime(), testTime())
	if err != nil {
		panic(err)
	}
	return u
}
