package ticket

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	KbStatusPending   = 0
	KbStatusProcessed = 1
)

// Ticket represents a service-desk ticket.
type Ticket struct {
	id               uint
	title            string
	deviceModel      string
	customer         string
	faultDescription string
	handleProcess    string
	status           string
	creatorID        uint
	handlerName      string
	fileID           *string
	kbStatus         int
	createdAt        time.Time
	updatedAt        time.Time
}

// NewTicket creates a ticket in the open state.
func NewTicket(title, deviceModel, customer, faultDescription string, creatorID uint) (*Ticket, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator is required")
	}

	now := time.Now()
	return &Ticket{
		title:            title,
		deviceModel:      deviceModel,
		customer:         customer,
		faultDescription: faultDescription,
		status:           StatusOpen,
		creatorID:        creatorID,
		kbStatus:         KbStatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructTicket reconstructs a ticket from persistence.
func ReconstructTicket(id uint, title, deviceModel, customer, faultDescription, handleProcess, status string, creatorID uint, handlerName string, fileID *string, kbStatus int, createdAt, updatedAt time.Time) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}

	return &Ticket{
		id:               id,
		title:            title,
		deviceModel:      deviceModel,
		customer:         customer,
		faultDescription: faultDescription,
		handleProcess:    handleProcess,
		status:           status,
		creatorID:        creatorID,
		handlerName:      handlerName,
		fileID:           fileID,
		kbStatus:         kbStatus,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

// SetID assigns the database-generated ID after persistence
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Title() string            { return t.title }
func (t *Ticket) DeviceModel() string      { return t.deviceModel }
func (t *Ticket) Customer() string         { return t.customer }
func (t *Ticket) FaultDescription() string { return t.faultDescription }
func (t *Ticket) HandleProcess() string    { return t.handleProcess }
func (t *Ticket) Status() string           { return t.status }
func (t *Ticket) CreatorID() uint          { return t.creatorID }
func (t *Ticket) HandlerName() string      { return t.handlerName }
func (t *Ticket) FileID() *string          { return t.fileID }
func (t *Ticket) KbStatus() int            { return t.kbStatus }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }

// Update applies mutable field changes and resets the knowledge-base status
// so the row gets re-uploaded.
func (t *Ticket) Update(title, deviceModel, customer, faultDescription, handleProcess, status, handlerName string) error {
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if !isValidStatus(status) {
		return fmt.Errorf("invalid ticket status: %s", status)
	}

	t.title = title
	t.deviceModel = deviceModel
	t.customer = customer
	t.faultDescription = faultDescription
	t.handleProcess = handleProcess
	t.status = status
	t.handlerName = handlerName
	t.kbStatus = KbStatusPending
	t.updatedAt = time.Now()
	return nil
}

// MarkUploaded records the external knowledge-base file id.
func (t *Ticket) MarkUploaded(fileID string) {
	t.fileID = &fileID
	t.kbStatus = KbStatusProcessed
	t.updatedAt = time.Now()
}

// KnowledgeText serializes the ticket into the plain-text form pushed to the
// knowledge base.
func (t *Ticket) KnowledgeText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "标题: %s\n", t.title)
	fmt.Fprintf(&b, "设备型号: %s\n", t.deviceModel)
	fmt.Fprintf(&b, "客户: %s\n", t.customer)
	fmt.Fprintf(&b, "故障描述: %s\n", t.faultDescription)
	fmt.Fprintf(&b, "处理过程: %s\n", t.handleProcess)
	return b.String()
}

func isValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}
