package mappers

import (
	"fmt"

	"haitch/internal/domain/user"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

type userMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &userMapperImpl{}
}

func (m *userMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		model.PasswordHash,
		model.Name,
		model.Phone,
		authorization.ParseUserRole(model.Role),
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user: %w", err)
	}

	return entity, nil
}

func (m *userMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		PasswordHash: entity.PasswordHash(),
		Name:         entity.Name(),
		Phone:        entity.Phone(),
		Role:         entity.Role().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *userMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
