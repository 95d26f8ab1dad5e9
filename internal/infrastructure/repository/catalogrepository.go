package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"haitch/internal/domain/catalog"
	"haitch/internal/infrastructure/persistence/mappers"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// DeviceModelRepository implements the device model repository interface
type DeviceModelRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceModelMapper
	logger logger.Interface
}

func NewDeviceModelRepository(database *gorm.DB, log logger.Interface) catalog.DeviceModelRepository {
	return &DeviceModelRepository{
		db:     database,
		mapper: mappers.NewDeviceModelMapper(),
		logger: log,
	}
}

func (r *DeviceModelRepository) Create(ctx context.Context, entity *catalog.DeviceModel) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map device model entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create device model", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create device model: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set device model ID: %w", err)
	}
	return nil
}

func (r *DeviceModelRepository) GetByID(ctx context.Context, id uint) (*catalog.DeviceModel, error) {
	var model models.DeviceModelModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device model: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *DeviceModelRepository) Update(ctx context.Context, entity *catalog.DeviceModel) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map device model entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.DeviceModelModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update device model: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeviceModelRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.DeviceModelModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete device model: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DeviceModelRepository) List(ctx context.Context) ([]*catalog.DeviceModel, error) {
	var rows []*models.DeviceModelModel
	if err := db.GetTxFromContext(ctx, r.db).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list device models: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *DeviceModelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.DeviceModelModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check device model name: %w", err)
	}
	return count > 0, nil
}

// CustomerRepository implements the customer repository interface.
// Deletes are soft; list and exists checks exclude flagged rows.
type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(database *gorm.DB, log logger.Interface) catalog.CustomerRepository {
	return &CustomerRepository{
		db:     database,
		mapper: mappers.NewCustomerMapper(),
		logger: log,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, entity *catalog.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create customer", "name", model.Name, "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set customer ID: %w", err)
	}
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id uint) (*catalog.Customer, error) {
	var model models.CustomerModel

	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *CustomerRepository) Update(ctx context.Context, entity *catalog.Customer) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map customer entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"is_delete":  model.IsDelete,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Where("id = ? AND is_delete = ?", id, 0).
		Updates(map[string]interface{}{
			"is_delete":  1,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]*catalog.Customer, error) {
	var rows []*models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).Scopes(db.NotDeleted()).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return r.mapper.ToEntities(rows)
}

func (r *CustomerRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Scopes(db.NotDeleted()).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer name: %w", err)
	}
	return count > 0, nil
}
