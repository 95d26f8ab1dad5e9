package ticket

import "context"

// Repository defines the interface for ticket data operations
type Repository interface {
	// Create creates a new ticket
	Create(ctx context.Context, t *Ticket) error

	// GetByID retrieves a ticket by internal ID
	GetByID(ctx context.Context, id uint) (*Ticket, error)

	// Update updates an existing ticket
	Update(ctx context.Context, t *Ticket) error

	// Delete removes a ticket by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated, filtered list of tickets
	List(ctx context.Context, filter ListFilter) ([]*Ticket, int64, error)

	// Search retrieves tickets matching keyword across text fields
	Search(ctx context.Context, keyword string, page, pageSize int) ([]*Ticket, int64, error)

	// ListPendingUpload retrieves tickets not yet pushed to the knowledge base
	ListPendingUpload(ctx context.Context, limit int) ([]*Ticket, error)
}

// AttachmentRepository manages attachment rows and their ticket links.
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, id uint) (*Attachment, error)
	Delete(ctx context.Context, id uint) error

	Link(ctx context.Context, ticketID, attachmentID uint) error
	Unlink(ctx context.Context, ticketID, attachmentID uint) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Attachment, error)
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}

// HistoryRepository records ticket mutations.
type HistoryRepository interface {
	Record(ctx context.Context, entry *HistoryEntry) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*HistoryEntry, error)
}

// ListFilter represents filtering and pagination options for ticket list
type ListFilter struct {
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	DeviceModel string `json:"device_model,omitempty"`
	Customer    string `json:"customer,omitempty"`
	Status      string `json:"status,omitempty"`
	CreatorID   uint   `json:"creator_id,omitempty"`
}
