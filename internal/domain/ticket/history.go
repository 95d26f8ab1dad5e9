package ticket

import "time"

const (
	HistoryActionCreate = "create"
	HistoryActionUpdate = "update"
	HistoryActionDelete = "delete"
)

// HistoryEntry captures one ticket mutation with before/after snapshots.
// Snapshots are serialized JSON of the ticket fields at each side of the
// change; Before is empty for creates, After is empty for deletes.
type HistoryEntry struct {
	ID         uint
	TicketID   uint
	Action     string
	Before     []byte
	After      []byte
	OperatorID uint
	CreatedAt  time.Time
}
