package user

import "context"

// Repository defines the interface for user data operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete removes a user by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves a paginated list of users
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// ExistsByUsername checks if a user exists by username
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// HistoryRepository records admin mutations on user accounts.
type HistoryRepository interface {
	Record(ctx context.Context, entry *HistoryEntry) error
	ListByUserID(ctx context.Context, userID uint) ([]*HistoryEntry, error)
}

// ListFilter represents filtering and pagination options for user list
type ListFilter struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
}
