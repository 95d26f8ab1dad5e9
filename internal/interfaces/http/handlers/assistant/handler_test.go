package assistant

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/application/assistant/usecases"
	raguc "haitch/internal/application/rag/usecases"
	"haitch/internal/interfaces/http/handlers/testutil"
	"haitch/internal/shared/errors"
)

type mockChat struct {
	result *usecases.ChatResult
	chunks []string
	err    error
	cmd    usecases.ChatCommand
}

func (m *mockChat) Execute(_ context.Context, cmd usecases.ChatCommand, onChunk func(text string) error) (*usecases.ChatResult, error) {
	m.cmd = cmd
	if m.err != nil {
		return nil, m.err
	}
	if onChunk != nil {
		for _, chunk := range m.chunks {
			if err := onChunk(chunk); err != nil {
				return nil, err
			}
		}
	}
	return m.result, nil
}

type mockIntake struct {
	detail   *raguc.QuestionDetail
	err      error
	question string
	answer   string
}

func (m *mockIntake) Create(_ context.Context, question, answer string) (*raguc.QuestionDetail, error) {
	m.question = question
	m.answer = answer
	if m.err != nil {
		return nil, m.err
	}
	return m.detail, nil
}

func TestAssistantHandler_Chat_JSON(t *testing.T) {
	chat := &mockChat{result: &usecases.ChatResult{Answer: "restart the print spooler"}}
	handler := NewAssistantHandler(chat, &mockIntake{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/chat", ChatRequest{Prompt: "printer offline"})
	testutil.SetAuthContext(c, 6, "user")

	handler.Chat(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "printer offline", chat.cmd.Prompt)
	assert.Equal(t, uint(6), chat.cmd.UserID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "restart the print spooler")
}

func TestAssistantHandler_Chat_Stream(t *testing.T) {
	chat := &mockChat{
		chunks: []string{"restart ", "the spooler"},
		result: &usecases.ChatResult{Answer: "restart the spooler"},
	}
	handler := NewAssistantHandler(chat, &mockIntake{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/chat", ChatRequest{Prompt: "printer offline", Stream: true})
	testutil.SetAuthContext(c, 6, "user")

	handler.Chat(c)

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	require.Equal(t, 2, strings.Count(body, "event:message"))
	assert.Contains(t, body, "restart ")
	assert.Contains(t, body, "event:done")
	assert.Contains(t, body, "restart the spooler")
}

func TestAssistantHandler_Chat_EmptyPrompt(t *testing.T) {
	handler := NewAssistantHandler(&mockChat{}, &mockIntake{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/chat", map[string]string{"prompt": ""})
	testutil.SetAuthContext(c, 6, "user")

	handler.Chat(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssistantHandler_Chat_StreamError(t *testing.T) {
	chat := &mockChat{err: errors.NewInternalError("assistant is unavailable")}
	handler := NewAssistantHandler(chat, &mockIntake{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/chat", ChatRequest{Prompt: "hello", Stream: true})
	testutil.SetAuthContext(c, 6, "user")

	handler.Chat(c)

	assert.Contains(t, w.Body.String(), "event:error")
}

func TestAssistantHandler_AskQuestion(t *testing.T) {
	intake := &mockIntake{detail: &raguc.QuestionDetail{ID: 9, Question: "vpn keeps dropping"}}
	handler := NewAssistantHandler(&mockChat{}, intake, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/questions", AskQuestionRequest{Question: "vpn keeps dropping"})
	testutil.SetAuthContext(c, 6, "user")

	handler.AskQuestion(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "vpn keeps dropping", intake.question)
	assert.Empty(t, intake.answer)
}

func TestAssistantHandler_AskQuestion_Empty(t *testing.T) {
	handler := NewAssistantHandler(&mockChat{}, &mockIntake{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/assistant/questions", map[string]string{"question": ""})
	testutil.SetAuthContext(c, 6, "user")

	handler.AskQuestion(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
