package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/catalog"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type mockDeviceModelRepo struct {
	ExistsByNameFunc func(ctx context.Context, name string) (bool, error)
	GetByIDFunc      func(ctx context.Context, id uint) (*catalog.DeviceModel, error)

	created []*catalog.DeviceModel
	deleted []uint
}

func (m *mockDeviceModelRepo) Create(_ context.Context, dm *catalog.DeviceModel) error {
	if err := dm.SetID(uint(len(m.created) + 1)); err != nil {
		return err
	}
	m.created = append(m.created, dm)
	return nil
}

func (m *mockDeviceModelRepo) GetByID(ctx context.Context, id uint) (*catalog.DeviceModel, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDeviceModelRepo) Update(_ context.Context, _ *catalog.DeviceModel) error { return nil }

func (m *mockDeviceModelRepo) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDeviceModelRepo) List(_ context.Context) ([]*catalog.DeviceModel, error) {
	return m.created, nil
}

func (m *mockDeviceModelRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	if m.ExistsByNameFunc != nil {
		return m.ExistsByNameFunc(ctx, name)
	}
	return false, nil
}

func TestDeviceModels_CreateAndList(t *testing.T) {
	repo := &mockDeviceModelRepo{}
	uc := NewDeviceModelUseCases(repo, logger.NewLogger())

	detail, err := uc.Create(context.Background(), "X-200")
	require.NoError(t, err)
	assert.Equal(t, uint(1), detail.ID)
	assert.Equal(t, "X-200", detail.Name)

	listed, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
}

func TestDeviceModels_DuplicateName(t *testing.T) {
	repo := &mockDeviceModelRepo{
		ExistsByNameFunc: func(_ context.Context, _ string) (bool, error) { return true, nil },
	}
	uc := NewDeviceModelUseCases(repo, logger.NewLogger())

	_, err := uc.Create(context.Background(), "X-200")
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestDeviceModels_RenameUnknown(t *testing.T) {
	uc := NewDeviceModelUseCases(&mockDeviceModelRepo{}, logger.NewLogger())

	_, err := uc.Rename(context.Background(), 44, "Y-300")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
