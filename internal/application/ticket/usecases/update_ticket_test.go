package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/domain/ticket"
)

func TestUpdateTicket_ReplacesAttachmentsAndReuploads(t *testing.T) {
	fileID := "file-7"
	existing := reconstructTestTicket(t, 2, &fileID)

	old, err := ticket.ReconstructAttachment(5, "old.pdf", "o.pdf", "/uploads/o.pdf", 10, "application/pdf", time.Now())
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		GetByIDFunc: func(_ context.Context, _ uint) (*ticket.Ticket, error) {
			return existing, nil
		},
	}
	attachmentRepo := &mockAttachmentRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*ticket.Attachment, error) {
			if id == 5 {
				return old, nil
			}
			return nil, nil
		},
	}
	historyRepo := &mockTicketHistoryRepository{}
	knowledge := &mockKnowledgeStore{}
	files := &mockFileRemover{}

	uc := NewUpdateTicketUseCase(ticketRepo, attachmentRepo, historyRepo, knowledge, files, testTxManager(t), testLogger())

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:            2,
		Title:               "Pump failure",
		DeviceModel:         "X-200",
		Customer:            "Acme",
		FaultDescription:    "No pressure",
		HandleProcess:       "Replaced seal and pump",
		Status:              ticket.StatusClosed,
		HandlerName:         "Bob",
		NewAttachments:      []AttachmentInput{{FileName: "new.jpg", StoredName: "n.jpg", Path: "/uploads/n.jpg", Size: 5, MimeType: "image/jpeg"}},
		DeleteAttachmentIDs: []uint{5},
		OperatorID:          1,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.StatusClosed, result.Status)

	assert.Equal(t, []uint{5}, attachmentRepo.deleted)
	assert.Equal(t, [2]uint{2, 5}, attachmentRepo.unlinked[0])
	require.Len(t, attachmentRepo.created, 1)
	assert.Equal(t, []string{"/uploads/o.pdf"}, files.removed)

	require.Len(t, historyRepo.recorded, 1)
	assert.Equal(t, ticket.HistoryActionUpdate, historyRepo.recorded[0].Action)
	assert.NotEmpty(t, historyRepo.recorded[0].Before)
	assert.NotEmpty(t, historyRepo.recorded[0].After)

	// Background job deletes the stale document, then uploads the new text
	require.Eventually(t, func() bool {
		return knowledge.uploadCount() == 1 && knowledge.deleteCount() == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "file-7", knowledge.deletes[0])
}

func TestUploadPendingTickets_SkipsFailedRows(t *testing.T) {
	first := reconstructTestTicket(t, 1, nil)
	second := reconstructTestTicket(t, 2, nil)

	ticketRepo := &mockTicketRepository{
		ListPendingUploadFunc: func(_ context.Context, _ int) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{first, second}, nil
		},
	}
	knowledge := &mockKnowledgeStore{
		UploadDocumentFunc: func(_ context.Context, fileName string, _ []byte) (string, error) {
			if fileName == "ticket_1.txt" {
				return "", assert.AnError
			}
			return "file-2", nil
		},
	}

	uc := NewUploadPendingTicketsUseCase(ticketRepo, knowledge, 5, testLogger())

	processed, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	assert.Equal(t, 2, knowledge.uploadCount())

	require.Equal(t, 1, ticketRepo.updateCount())
	assert.Equal(t, uint(2), ticketRepo.updated[0].ID())
}
