package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"haitch/internal/domain/ticket"
	"haitch/internal/infrastructure/persistence/mappers"
	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// TicketRepository implements the ticket repository interface
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

// NewTicketRepository creates a new ticket repository
func NewTicketRepository(database *gorm.DB, log logger.Interface) ticket.Repository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
		logger: log,
	}
}

func (r *TicketRepository) Create(ctx context.Context, entity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "title", model.Title, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	r.logger.Infow("ticket created", "id", model.ID, "title", model.Title)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *TicketRepository) Update(ctx context.Context, entity *ticket.Ticket) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map ticket entity: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":             model.Title,
			"device_model":      model.DeviceModel,
			"customer":          model.Customer,
			"fault_description": model.FaultDescription,
			"handle_process":    model.HandleProcess,
			"status":            model.Status,
			"handler_name":      model.HandlerName,
			"file_id":           model.FileID,
			"kb_status":         model.KbStatus,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete ticket", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("ticket deleted", "id", id)
	return nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{})

	if filter.DeviceModel != "" {
		query = query.Where("device_model = ?", filter.DeviceModel)
	}
	if filter.Customer != "" {
		query = query.Where("customer = ?", filter.Customer)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatorID != 0 {
		query = query.Where("creator_id = ?", filter.CreatorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []*models.TicketModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).
		Order("id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *TicketRepository) Search(ctx context.Context, keyword string, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	pattern := "%" + keyword + "%"
	query := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).
		Where("title LIKE ? OR device_model LIKE ? OR customer LIKE ? OR fault_description LIKE ? OR handle_process LIKE ?",
			pattern, pattern, pattern, pattern, pattern)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	var ticketModels []*models.TicketModel
	if err := query.Scopes(db.Paginate(page, pageSize)).
		Order("id DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search tickets: %w", err)
	}

	entities, err := r.mapper.ToEntities(ticketModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *TicketRepository) ListPendingUpload(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	var ticketModels []*models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("kb_status = ?", ticket.KbStatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending tickets: %w", err)
	}

	return r.mapper.ToEntities(ticketModels)
}
