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

// AttachmentRepository implements attachment storage and ticket links.
type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.AttachmentMapper
	logger logger.Interface
}

func NewAttachmentRepository(database *gorm.DB, log logger.Interface) ticket.AttachmentRepository {
	return &AttachmentRepository{
		db:     database,
		mapper: mappers.NewAttachmentMapper(),
		logger: log,
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, entity *ticket.Attachment) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map attachment entity: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create attachment", "file_name", model.FileName, "error", err)
		return fmt.Errorf("failed to create attachment: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set attachment ID: %w", err)
	}

	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AttachmentRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("attachment_id = ?", id).
		Delete(&models.TicketAttachmentLinkModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachment links: %w", err)
	}

	result := tx.Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *AttachmentRepository) Link(ctx context.Context, ticketID, attachmentID uint) error {
	link := &models.TicketAttachmentLinkModel{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(link).Error; err != nil {
		return fmt.Errorf("failed to link attachment %d to ticket %d: %w", attachmentID, ticketID, err)
	}
	return nil
}

func (r *AttachmentRepository) Unlink(ctx context.Context, ticketID, attachmentID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Where("ticket_id = ? AND attachment_id = ?", ticketID, attachmentID).
		Delete(&models.TicketAttachmentLinkModel{}).Error; err != nil {
		return fmt.Errorf("failed to unlink attachment %d from ticket %d: %w", attachmentID, ticketID, err)
	}
	return nil
}

func (r *AttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	var attachmentModels []*models.AttachmentModel

	if err := db.GetTxFromContext(ctx, r.db).
		Joins("JOIN ticket_attachment_links ON ticket_attachment_links.attachment_id = attachments.id").
		Where("ticket_attachment_links.ticket_id = ?", ticketID).
		Order("attachments.id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket attachments: %w", err)
	}

	return r.mapper.ToEntities(attachmentModels)
}

func (r *AttachmentRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var links []*models.TicketAttachmentLinkModel
	if err := tx.Where("ticket_id = ?", ticketID).Find(&links).Error; err != nil {
		return fmt.Errorf("failed to load attachment links: %w", err)
	}

	attachmentIDs := make([]uint, 0, len(links))
	for _, l := range links {
		attachmentIDs = append(attachmentIDs, l.AttachmentID)
	}

	if err := tx.Where("ticket_id = ?", ticketID).
		Delete(&models.TicketAttachmentLinkModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachment links: %w", err)
	}

	if len(attachmentIDs) > 0 {
		if err := tx.Where("id IN ?", attachmentIDs).
			Delete(&models.AttachmentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attachments: %w", err)
		}
	}

	return nil
}
