package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"haitch/internal/infrastructure/persistence/models"
	"haitch/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	)
	require.NoError(t, err)

	return db
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
