package migration

import (
	"haitch/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.UserHistoryModel{},
		&models.TicketModel{},
		&models.AttachmentModel{},
		&models.TicketAttachmentLinkModel{},
		&models.TicketHistoryModel{},
		&models.DeviceModelModel{},
		&models.CustomerModel{},
		&models.QuestionModel{},
		&models.DocumentModel{},
		&models.SurveyModel{},
		&models.SurveyQuestionModel{},
		&models.SurveyOptionModel{},
		&models.SurveyResponseModel{},
		&models.SurveyAnswerModel{},
		&models.SurveyAnswerChoiceModel{},
	}
}
