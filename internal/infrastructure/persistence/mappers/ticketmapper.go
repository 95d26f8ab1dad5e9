package mappers

import (
	"fmt"

	"haitch/internal/domain/ticket"
	"haitch/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and persistence models
type TicketMapper interface {
	ToEntity(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) (*models.TicketModel, error)
	ToEntities(models []*models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapperImpl{}
}

func (m *ticketMapperImpl) ToEntity(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructTicket(
		model.ID,
		model.Title,
		model.DeviceModel,
		model.Customer,
		model.FaultDescription,
		model.HandleProcess,
		model.Status,
		model.CreatorID,
		model.HandlerName,
		model.FileID,
		model.KbStatus,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct ticket: %w", err)
	}

	return entity, nil
}

func (m *ticketMapperImpl) ToModel(entity *ticket.Ticket) (*models.TicketModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.TicketModel{
		ID:               entity.ID(),
		Title:            entity.Title(),
		DeviceModel:      entity.DeviceModel(),
		Customer:         entity.Customer(),
		FaultDescription: entity.FaultDescription(),
		HandleProcess:    entity.HandleProcess(),
		Status:           entity.Status(),
		CreatorID:        entity.CreatorID(),
		HandlerName:      entity.HandlerName(),
		FileID:           entity.FileID(),
		KbStatus:         entity.KbStatus(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *ticketMapperImpl) ToEntities(ticketModels []*models.TicketModel) ([]*ticket.Ticket, error) {
	entities := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// AttachmentMapper converts attachment rows.
type AttachmentMapper interface {
	ToEntity(model *models.AttachmentModel) (*ticket.Attachment, error)
	ToModel(entity *ticket.Attachment) (*models.AttachmentModel, error)
	ToEntities(models []*models.AttachmentModel) ([]*ticket.Attachment, error)
}

type attachmentMapperImpl struct{}

func NewAttachmentMapper() AttachmentMapper {
	return &attachmentMapperImpl{}
}

func (m *attachmentMapperImpl) ToEntity(model *models.AttachmentModel) (*ticket.Attachment, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := ticket.ReconstructAttachment(
		model.ID,
		model.FileName,
		model.StoredName,
		model.Path,
		model.Size,
		model.MimeType,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct attachment: %w", err)
	}

	return entity, nil
}

func (m *attachmentMapperImpl) ToModel(entity *ticket.Attachment) (*models.AttachmentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.AttachmentModel{
		ID:         entity.ID(),
		FileName:   entity.FileName(),
		StoredName: entity.StoredName(),
		Path:       entity.Path(),
		Size:       entity.Size(),
		MimeType:   entity.MimeType(),
		CreatedAt:  entity.CreatedAt(),
	}, nil
}

func (m *attachmentMapperImpl) ToEntities(attachmentModels []*models.AttachmentModel) ([]*ticket.Attachment, error) {
	entities := make([]*ticket.Attachment, 0, len(attachmentModels))
	for _, model := range attachmentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
