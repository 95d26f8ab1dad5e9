package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/ticket"
)

func createTestTicket(t *testing.T, title string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(title, "LaserJet 400", "Acme", "paper jam", 1)
	require.NoError(t, err)
	return tk
}

func TestTicketRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	tk := createTestTicket(t, "printer down")
	require.NoError(t, repo.Create(ctx, tk))
	assert.NotZero(t, tk.ID())

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "printer down", found.Title())
	assert.Equal(t, ticket.KbStatusPending, found.KbStatus())

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTicketRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	tk := createTestTicket(t, "printer down")
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, tk.Update("printer down", "LaserJet 400", "Acme", "paper jam", "fixed roller", ticket.StatusResolved, "Li"))
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusResolved, found.Status())
	assert.Equal(t, "fixed roller", found.HandleProcess())
}

func TestTicketRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	a := createTestTicket(t, "a")
	require.NoError(t, repo.Create(ctx, a))

	b, err := ticket.NewTicket("b", "ThinkPad", "Globex", "no boot", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, b))

	tickets, total, err := repo.List(ctx, ticket.ListFilter{Page: 1, PageSize: 10, DeviceModel: "ThinkPad"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, tickets, 1)
	assert.Equal(t, "b", tickets[0].Title())

	tickets, total, err = repo.List(ctx, ticket.ListFilter{Page: 1, PageSize: 10, CreatorID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "a", tickets[0].Title())
}

func TestTicketRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestTicket(t, "printer down")))

	b, err := ticket.NewTicket("screen flicker", "ThinkPad", "Globex", "flicker on boot", 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, b))

	results, total, err := repo.Search(ctx, "flicker", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, results, 1)
	assert.Equal(t, "screen flicker", results[0].Title())

	// Keyword matches across fields, not just title.
	results, _, err = repo.Search(ctx, "Globex", 1, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "screen flicker", results[0].Title())
}

func TestTicketRepository_ListPendingUpload(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	a := createTestTicket(t, "pending one")
	require.NoError(t, repo.Create(ctx, a))

	b := createTestTicket(t, "already uploaded")
	require.NoError(t, repo.Create(ctx, b))
	b.MarkUploaded("file-1")
	require.NoError(t, repo.Update(ctx, b))

	pending, err := repo.ListPendingUpload(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "pending one", pending[0].Title())
}

func TestTicketRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db, testLogger())
	ctx := context.Background()

	tk := createTestTicket(t, "to delete")
	require.NoError(t, repo.Create(ctx, tk))

	require.NoError(t, repo.Delete(ctx, tk.ID()))

	found, err := repo.GetByID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(ctx, tk.ID()))
}

func TestAttachmentRepository_LinksFollowTicket(t *testing.T) {
	db := setupTestDB(t)
	ticketRepo := NewTicketRepository(db, testLogger())
	attRepo := NewAttachmentRepository(db, testLogger())
	ctx := context.Background()

	tk := createTestTicket(t, "with files")
	require.NoError(t, ticketRepo.Create(ctx, tk))

	for _, name := range []string{"a.png", "b.pdf"} {
		a, err := ticket.NewAttachment(name, "stored-"+name, "/uploads/stored-"+name, 10, "application/octet-stream")
		require.NoError(t, err)
		require.NoError(t, attRepo.Create(ctx, a))
		require.NoError(t, attRepo.Link(ctx, tk.ID(), a.ID()))
	}

	attachments, err := attRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Len(t, attachments, 2)

	require.NoError(t, attRepo.DeleteByTicketID(ctx, tk.ID()))

	attachments, err = attRepo.ListByTicketID(ctx, tk.ID())
	require.NoError(t, err)
	assert.Empty(t, attachments)
}
