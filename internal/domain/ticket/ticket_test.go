package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket("printer down", "LaserJet 400", "Acme", "paper jam", 7)
	require.NoError(t, err)
	assert.Equal(t, StatusOpen, tk.Status())
	assert.Equal(t, KbStatusPending, tk.KbStatus())
	assert.Nil(t, tk.FileID())
}

func TestNewTicket_Validation(t *testing.T) {
	_, err := NewTicket("", "m", "c", "d", 1)
	assert.Error(t, err)

	_, err = NewTicket("title", "m", "c", "d", 0)
	assert.Error(t, err)
}

func TestTicket_Update(t *testing.T) {
	tk, err := NewTicket("printer down", "LaserJet 400", "Acme", "paper jam", 7)
	require.NoError(t, err)
	tk.MarkUploaded("file-123")
	assert.Equal(t, KbStatusProcessed, tk.KbStatus())

	err = tk.Update("printer down", "LaserJet 400", "Acme", "paper jam", "replaced roller", StatusResolved, "Li")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, tk.Status())
	assert.Equal(t, "replaced roller", tk.HandleProcess())
	// An edit invalidates the uploaded copy.
	assert.Equal(t, KbStatusPending, tk.KbStatus())

	err = tk.Update("printer down", "", "", "", "", "nonsense", "")
	assert.Error(t, err)
}

func TestTicket_MarkUploaded(t *testing.T) {
	tk, err := NewTicket("t", "m", "c", "d", 1)
	require.NoError(t, err)

	tk.MarkUploaded("doc-42")
	require.NotNil(t, tk.FileID())
	assert.Equal(t, "doc-42", *tk.FileID())
	assert.Equal(t, KbStatusProcessed, tk.KbStatus())
}

func TestTicket_KnowledgeText(t *testing.T) {
	tk, err := NewTicket("printer down", "LaserJet 400", "Acme", "paper jam", 7)
	require.NoError(t, err)

	text := tk.KnowledgeText()
	assert.Contains(t, text, "printer down")
	assert.Contains(t, text, "LaserJet 400")
	assert.Contains(t, text, "Acme")
	assert.Contains(t, text, "paper jam")
}

func TestNewAttachment(t *testing.T) {
	a, err := NewAttachment("report.pdf", "20250410-uuid.pdf", "/uploads/20250410-uuid.pdf", 1024, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "report.pdf", a.FileName())
	assert.Equal(t, int64(1024), a.Size())

	_, err = NewAttachment("", "s", "p", 0, "")
	assert.Error(t, err)
}
