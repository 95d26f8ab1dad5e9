package mappers

import (
	"fmt"

	"haitch/internal/domain/catalog"
	"haitch/internal/infrastructure/persistence/models"
)

// DeviceModelMapper converts device model rows.
type DeviceModelMapper interface {
	ToEntity(model *models.DeviceModelModel) (*catalog.DeviceModel, error)
	ToModel(entity *catalog.DeviceModel) (*models.DeviceModelModel, error)
	ToEntities(models []*models.DeviceModelModel) ([]*catalog.DeviceModel, error)
}

type deviceModelMapperImpl struct{}

func NewDeviceModelMapper() DeviceModelMapper {
	return &deviceModelMapperImpl{}
}

func (m *deviceModelMapperImpl) ToEntity(model *models.DeviceModelModel) (*catalog.DeviceModel, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructDeviceModel(model.ID, model.Name, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct device model: %w", err)
	}
	return entity, nil
}

func (m *deviceModelMapperImpl) ToModel(entity *catalog.DeviceModel) (*models.DeviceModelModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.DeviceModelModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *deviceModelMapperImpl) ToEntities(deviceModels []*models.DeviceModelModel) ([]*catalog.DeviceModel, error) {
	entities := make([]*catalog.DeviceModel, 0, len(deviceModels))
	for _, model := range deviceModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// CustomerMapper converts customer rows.
type CustomerMapper interface {
	ToEntity(model *models.CustomerModel) (*catalog.Customer, error)
	ToModel(entity *catalog.Customer) (*models.CustomerModel, error)
	ToEntities(models []*models.CustomerModel) ([]*catalog.Customer, error)
}

type customerMapperImpl struct{}

func NewCustomerMapper() CustomerMapper {
	return &customerMapperImpl{}
}

func (m *customerMapperImpl) ToEntity(model *models.CustomerModel) (*catalog.Customer, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := catalog.ReconstructCustomer(model.ID, model.Name, model.IsDelete == 1, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct customer: %w", err)
	}
	return entity, nil
}

func (m *customerMapperImpl) ToModel(entity *catalog.Customer) (*models.CustomerModel, error) {
	if entity == nil {
		return nil, nil
	}

	isDelete := 0
	if entity.IsDeleted() {
		isDelete = 1
	}

	return &models.CustomerModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		IsDelete:  isDelete,
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *customerMapperImpl) ToEntities(customerModels []*models.CustomerModel) ([]*catalog.Customer, error) {
	entities := make([]*catalog.Customer, 0, len(customerModels))
	for _, model := range customerModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
