package mappers

import (
	"fmt"

	"haitch/internal/domain/rag"
	"haitch/internal/infrastructure/persistence/models"
)

// QuestionMapper converts question rows.
type QuestionMapper interface {
	ToEntity(model *models.QuestionModel) (*rag.Question, error)
	ToModel(entity *rag.Question) (*models.QuestionModel, error)
	ToEntities(models []*models.QuestionModel) ([]*rag.Question, error)
}

type questionMapperImpl struct{}

func NewQuestionMapper() QuestionMapper {
	return &questionMapperImpl{}
}

func (m *questionMapperImpl) ToEntity(model *models.QuestionModel) (*rag.Question, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := rag.ReconstructQuestion(
		model.ID,
		model.Question,
		model.Answer,
		model.Status,
		model.IsDelete == 1,
		model.FileID,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct question: %w", err)
	}
	return entity, nil
}

func (m *questionMapperImpl) ToModel(entity *rag.Question) (*models.QuestionModel, error) {
	if entity == nil {
		return nil, nil
	}

	isDelete := 0
	if entity.IsDeleted() {
		isDelete = 1
	}

	return &models.QuestionModel{
		ID:        entity.ID(),
		Question:  entity.Question(),
		Answer:    entity.Answer(),
		Status:    entity.Status(),
		IsDelete:  isDelete,
		FileID:    entity.FileID(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *questionMapperImpl) ToEntities(questionModels []*models.QuestionModel) ([]*rag.Question, error) {
	entities := make([]*rag.Question, 0, len(questionModels))
	for _, model := range questionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// DocumentMapper converts document rows.
type DocumentMapper interface {
	ToEntity(model *models.DocumentModel) (*rag.Document, error)
	ToModel(entity *rag.Document) (*models.DocumentModel, error)
	ToEntities(models []*models.DocumentModel) ([]*rag.Document, error)
}

type documentMapperImpl struct{}

func NewDocumentMapper() DocumentMapper {
	return &documentMapperImpl{}
}

func (m *documentMapperImpl) ToEntity(model *models.DocumentModel) (*rag.Document, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := rag.ReconstructDocument(
		model.ID,
		model.Name,
		model.Path,
		model.Size,
		model.FileID,
		model.Status,
		model.IsDelete == 1,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct document: %w", err)
	}
	return entity, nil
}

func (m *documentMapperImpl) ToModel(entity *rag.Document) (*models.DocumentModel, error) {
	if entity == nil {
		return nil, nil
	}

	isDelete := 0
	if entity.IsDeleted() {
		isDelete = 1
	}

	return &models.DocumentModel{
		ID:        entity.ID(),
		Name:      entity.Name(),
		Path:      entity.Path(),
		Size:      entity.Size(),
		FileID:    entity.FileID(),
		Status:    entity.Status(),
		IsDelete:  isDelete,
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *documentMapperImpl) ToEntities(documentModels []*models.DocumentModel) ([]*rag.Document, error) {
	entities := make([]*rag.Document, 0, len(documentModels))
	for _, model := range documentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
