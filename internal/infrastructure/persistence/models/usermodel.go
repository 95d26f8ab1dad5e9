package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"haitch/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID           uint   `gorm:"primarykey"`
	Username     string `gorm:"uniqueIndex;not null;size:100"`
	PasswordHash string `gorm:"not null;size:255"`
	Name         string `gorm:"size:100"`
	Phone        string `gorm:"size:20;index:idx_users_phone"`
	Role         string `gorm:"not null;default:user;size:20"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = "user"
	}
	return nil
}

// UserHistoryModel records admin mutations on user accounts with
// before/after snapshots.
type UserHistoryModel struct {
	ID         uint   `gorm:"primarykey"`
	UserID     uint   `gorm:"not null;index:idx_user_histories_user_id"`
	Action     string `gorm:"not null;size:50"`
	Before     datatypes.JSON
	After      datatypes.JSON
	OperatorID uint `gorm:"not null"`
	CreatedAt  time.Time
}

func (UserHistoryModel) TableName() string {
	return constants.TableUserHistories
}
