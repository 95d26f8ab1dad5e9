package usecases

import (
	"context"
	"fmt"
	"time"

	"haitch/internal/domain/catalog"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
)

type DeviceModelDetail struct {
	ID        uint
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeviceModelUseCases bundles the device-model catalog operations.
type DeviceModelUseCases struct {
	repo   catalog.DeviceModelRepository
	logger logger.Interface
}

func NewDeviceModelUseCases(repo catalog.DeviceModelRepository, logger logger.Interface) *DeviceModelUseCases {
	return &DeviceModelUseCases{repo: repo, logger: logger}
}

func (uc *DeviceModelUseCases) Create(ctx context.Context, name string) (*DeviceModelDetail, error) {
	exists, err := uc.repo.ExistsByName(ctx, name)
	if err != nil {
		uc.logger.Errorw("failed to check device model name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to check device model: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("device model already exists", name)
	}

	m, err := catalog.NewDeviceModel(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, m); err != nil {
		uc.logger.Errorw("failed to create device model", "name", name, "error", err)
		return nil, err
	}

	uc.logger.Infow("device model created", "id", m.ID(), "name", m.Name())
	return toDeviceModelDetail(m), nil
}

func (uc *DeviceModelUseCases) Rename(ctx context.Context, id uint, name string) (*DeviceModelDetail, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Errorw("failed to get device model", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get device model: %w", err)
	}
	if m == nil {
		return nil, errors.NewNotFoundError("device model not found")
	}

	if m.Name() != name {
		exists, err := uc.repo.ExistsByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to check device model: %w", err)
		}
		if exists {
			return nil, errors.NewConflictError("device model already exists", name)
		}
	}

	if err := m.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Update(ctx, m); err != nil {
		uc.logger.Errorw("failed to update device model", "id", id, "error", err)
		return nil, err
	}

	return toDeviceModelDetail(m), nil
}

func (uc *DeviceModelUseCases) Delete(ctx context.Context, id uint) error {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get device model: %w", err)
	}
	if m == nil {
		return errors.NewNotFoundError("device model not found")
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete device model", "id", id, "error", err)
		return err
	}

	uc.logger.Infow("device model deleted", "id", id)
	return nil
}

func (uc *DeviceModelUseCases) List(ctx context.Context) ([]*DeviceModelDetail, error) {
	models, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list device models", "error", err)
		return nil, fmt.Errorf("failed to list device models: %w", err)
	}

	details := make([]*DeviceModelDetail, 0, len(models))
	for _, m := range models {
		details = append(details, toDeviceModelDetail(m))
	}
	return details, nil
}

func toDeviceModelDetail(m *catalog.DeviceModel) *DeviceModelDetail {
	return &DeviceModelDetail{
		ID:        m.ID(),
		Name:      m.Name(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}
