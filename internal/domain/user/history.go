package user

import "time"

// HistoryEntry captures one mutation of a user account for auditing.
type HistoryEntry struct {
	ID         uint
	UserID     uint
	Action     string
	Before     []byte
	After      []byte
	OperatorID uint
	CreatedAt  time.Time
}

const (
	HistoryActionCreate         = "create"
	HistoryActionUpdate         = "update"
	HistoryActionDelete         = "delete"
	HistoryActionPasswordChange = "password_change"
)
