package models

import (
	"time"

	"haitch/internal/shared/constants"
)

// DeviceModelModel represents a device model catalog entry.
type DeviceModelModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DeviceModelModel) TableName() string {
	return constants.TableDeviceModels
}

// CustomerModel represents a customer catalog entry. Customers are
// soft-deleted so historical tickets keep resolving their names.
type CustomerModel struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	IsDelete  int    `gorm:"not null;default:0;index:idx_customers_is_delete"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
