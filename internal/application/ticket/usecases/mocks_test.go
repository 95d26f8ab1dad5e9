package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

// testTxManager backs the transaction manager with an in-memory database so
// RunInTransaction can commit around the mock repositories.
func testTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockTicketRepository struct {
	mu sync.Mutex

	CreateFunc            func(ctx context.Context, tk *ticket.Ticket) error
	GetByIDFunc           func(ctx context.Context, id uint) (*ticket.Ticket, error)
	UpdateFunc            func(ctx context.Context, tk *ticket.Ticket) error
	DeleteFunc            func(ctx context.Context, id uint) error
	ListFunc              func(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error)
	SearchFunc            func(ctx context.Context, keyword string, page, pageSize int) ([]*ticket.Ticket, int64, error)
	ListPendingUploadFunc func(ctx context.Context, limit int) ([]*ticket.Ticket, error)

	updated []*ticket.Ticket
	deleted []uint
}

func (m *mockTicketRepository) Create(ctx context.Context, tk *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tk)
	}
	return tk.SetID(1)
}

func (m *mockTicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Update(ctx context.Context, tk *ticket.Ticket) error {
	m.mu.Lock()
	m.updated = append(m.updated, tk)
	m.mu.Unlock()
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tk)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.ListFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Search(ctx context.Context, keyword string, page, pageSize int) ([]*ticket.Ticket, int64, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, keyword, page, pageSize)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListPendingUpload(ctx context.Context, limit int) ([]*ticket.Ticket, error) {
	if m.ListPendingUploadFunc != nil {
		return m.ListPendingUploadFunc(ctx, limit)
	}
	return nil, nil
}

func (m *mockTicketRepository) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.updated)
}

type mockAttachmentRepository struct {
	GetByIDFunc        func(ctx context.Context, id uint) (*ticket.Attachment, error)
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)

	created  []*ticket.Attachment
	linked   [][2]uint
	unlinked [][2]uint
	deleted  []uint

	deletedByTicket []uint
	nextID          uint
}

func (m *mockAttachmentRepository) Create(_ context.Context, a *ticket.Attachment) error {
	m.nextID++
	if err := a.SetID(m.nextID); err != nil {
		return err
	}
	m.created = append(m.created, a)
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, id uint) (*ticket.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(_ context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockAttachmentRepository) Link(_ context.Context, ticketID, attachmentID uint) error {
	m.linked = append(m.linked, [2]uint{ticketID, attachmentID})
	return nil
}

func (m *mockAttachmentRepository) Unlink(_ context.Context, ticketID, attachmentID uint) error {
	m.unlinked = append(m.unlinked, [2]uint{ticketID, attachmentID})
	return nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteByTicketID(_ context.Context, ticketID uint) error {
	m.deletedByTicket = append(m.deletedByTicket, ticketID)
	return nil
}

type mockTicketHistoryRepository struct {
	recorded []*ticket.HistoryEntry
}

func (m *mockTicketHistoryRepository) Record(_ context.Context, entry *ticket.HistoryEntry) error {
	m.recorded = append(m.recorded, entry)
	return nil
}

func (m *mockTicketHistoryRepository) ListByTicketID(_ context.Context, _ uint) ([]*ticket.HistoryEntry, error) {
	return nil, nil
}

type mockKnowledgeStore struct {
	mu sync.Mutex

	UploadDocumentFunc func(ctx context.Context, fileName string, content []byte) (string, error)
	DeleteDocumentFunc func(ctx context.Context, fileID string) error

	uploads []string
	deletes []string
}

func (m *mockKnowledgeStore) UploadDocument(ctx context.Context, fileName string, content []byte) (string, error) {
	m.mu.Lock()
	m.uploads = append(m.uploads, fileName)
	m.mu.Unlock()
	if m.UploadDocumentFunc != nil {
		return m.UploadDocumentFunc(ctx, fileName, content)
	}
	return "file-1", nil
}

func (m *mockKnowledgeStore) DeleteDocument(ctx context.Context, fileID string) error {
	m.mu.Lock()
	m.deletes = append(m.deletes, fileID)
	m.mu.Unlock()
	if m.DeleteDocumentFunc != nil {
		return m.DeleteDocumentFunc(ctx, fileID)
	}
	return nil
}

func (m *mockKnowledgeStore) uploadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.uploads)
}

func (m *mockKnowledgeStore) deleteCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.deletes)
}

type mockFileRemover struct {
	removed []string
}

func (m *mockFileRemover) Remove(path string) error {
	m.removed = append(m.removed, path)
	return nil
}
