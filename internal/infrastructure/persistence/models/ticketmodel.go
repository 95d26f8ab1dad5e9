package models

import (
	"time"

	"gorm.io/datatypes"

	"haitch/internal/shared/constants"
)

// TicketModel represents the database persistence model for service tickets
type TicketModel struct {
	ID               uint   `gorm:"primarykey"`
	Title            string `gorm:"not null;size:255"`
	DeviceModel      string `gorm:"size:100;index:idx_tickets_device_model"`
	Customer         string `gorm:"size:100;index:idx_tickets_customer"`
	FaultDescription string `gorm:"type:text"`
	HandleProcess    string `gorm:"type:text"`
	Status           string `gorm:"not null;default:open;size:20"`
	CreatorID        uint   `gorm:"not null;index:idx_tickets_creator_id"`
	HandlerName      string `gorm:"size:100"`
	// FileID is the external knowledge-base document id once the ticket has
	// been pushed through the upload pipeline.
	FileID    *string `gorm:"size:128"`
	KbStatus  int     `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return constants.TableTickets
}

// AttachmentModel represents an uploaded file on disk.
type AttachmentModel struct {
	ID         uint   `gorm:"primarykey"`
	FileName   string `gorm:"not null;size:255"`
	StoredName string `gorm:"not null;size:255;uniqueIndex"`
	Path       string `gorm:"not null;size:500"`
	Size       int64  `gorm:"not null"`
	MimeType   string `gorm:"size:100"`
	CreatedAt  time.Time
}

func (AttachmentModel) TableName() string {
	return constants.TableAttachments
}

// TicketAttachmentLinkModel joins tickets to their attachments.
type TicketAttachmentLinkModel struct {
	ID           uint `gorm:"primarykey"`
	TicketID     uint `gorm:"not null;index:idx_ticket_attachment_links_ticket_id"`
	AttachmentID uint `gorm:"not null;index:idx_ticket_attachment_links_attachment_id"`
	CreatedAt    time.Time
}

func (TicketAttachmentLinkModel) TableName() string {
	return constants.TableTicketAttachmentLink
}

// TicketHistoryModel records ticket mutations with before/after snapshots.
type TicketHistoryModel struct {
	ID         uint   `gorm:"primarykey"`
	TicketID   uint   `gorm:"not null;index:idx_ticket_histories_ticket_id"`
	Action     string `gorm:"not null;size:50"`
	Before     datatypes.JSON
	After      datatypes.JSON
	OperatorID uint `gorm:"not null"`
	CreatedAt  time.Time
}

func (TicketHistoryModel) TableName() string {
	return constants.TableTicketHistories
}
