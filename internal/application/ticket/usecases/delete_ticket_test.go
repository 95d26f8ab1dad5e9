package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/ticket"
	"haitch/internal/shared/errors"
)

func reconstructTestTicket(t *testing.T, id uint, fileID *string) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.ReconstructTicket(
		id, "Pump failure", "X-200", "Acme", "No pressure", "Replaced seal",
		ticket.StatusResolved, 4, "Bob", fileID, ticket.KbStatusProcessed,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func TestDeleteTicket_RemovesEverything(t *testing.T) {
	fileID := "file-42"
	existing := reconstructTestTicket(t, 9, &fileID)

	attachment, err := ticket.ReconstructAttachment(3, "photo.jpg", "a.jpg", "/uploads/a.jpg", 100, "image/jpeg", time.Now())
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		ListByTicketIDFunc: func(_ context.Context, _ uint) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{attachment}, nil
		},
	}
	historyRepo := &mockTicketHistoryRepository{}
	knowledge := &mockKnowledgeStore{}
	files := &mockFileRemover{}

	uc := NewDeleteTicketUseCase(ticketRepo, attachmentRepo, historyRepo, knowledge, files, testTxManager(t), testLogger())

	err = uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 9, OperatorID: 1})
	require.NoError(t, err)

	assert.Equal(t, []uint{9}, ticketRepo.deleted)
	assert.Equal(t, []uint{9}, attachmentRepo.deletedByTicket)
	assert.Equal(t, []string{"/uploads/a.jpg"}, files.removed)

	// Exactly one remote document delete for the stored file id
	assert.Equal(t, 1, knowledge.deleteCount())
	assert.Equal(t, "file-42", knowledge.deletes[0])

	require.Len(t, historyRepo.recorded, 1)
	assert.Equal(t, ticket.HistoryActionDelete, historyRepo.recorded[0].Action)
	assert.NotEmpty(t, historyRepo.recorded[0].Before)
	assert.Nil(t, historyRepo.recorded[0].After)
}

func TestDeleteTicket_NoFileIDSkipsRemoteDelete(t *testing.T) {
	existing := reconstructTestTicket(t, 9, nil)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	knowledge := &mockKnowledgeStore{}

	uc := NewDeleteTicketUseCase(ticketRepo, &mockAttachmentRepository{}, &mockTicketHistoryRepository{}, knowledge, &mockFileRemover{}, testTxManager(t), testLogger())

	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 9, OperatorID: 1}))
	assert.Equal(t, 0, knowledge.deleteCount())
}

func TestDeleteTicket_NotFound(t *testing.T) {
	uc := NewDeleteTicketUseCase(&mockTicketRepository{}, &mockAttachmentRepository{}, &mockTicketHistoryRepository{}, &mockKnowledgeStore{}, &mockFileRemover{}, testTxManager(t), testLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{TicketID: 404})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
