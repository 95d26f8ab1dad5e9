package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/user"
	"haitch/internal/infrastructure/persistence/mappers"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// UserRepository implements the user repository interface
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *gorm.DB, log logger.Interface) user.Repository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
		logger: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create user", "username", model.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "username", model.Username)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var model models.UserModel

	if err := db.GetTxFromContext(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by username", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepository) Update(ctx context.Context, entity *user.User) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"username":      model.Username,
			"password_hash": model.PasswordHash,
			"name":          model.Name,
			"phone":         model.Phone,
			"role":          model.Role,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("user deleted", "id", id)
	return nil
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{})

	if filter.Username != "" {
		query = query.Where("username LIKE ?", "%"+filter.Username+"%")
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var userModels []*models.UserModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("id DESC").
		Find(&userModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities, err := r.mapper.ToEntities(userModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}
