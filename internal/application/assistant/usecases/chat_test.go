package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/services/markdown"
)

type mockStreamer struct {
	StreamChatFunc func(ctx context.Context, prompt string, onChunk func(text string) error) error

	prompts []string
}

func (m *mockStreamer) StreamChat(ctx context.Context, prompt string, onChunk func(text string) error) error {
	m.prompts = append(m.prompts, prompt)
	if m.StreamChatFunc != nil {
		return m.StreamChatFunc(ctx, prompt, onChunk)
	}
	return nil
}

func TestChat_StreamsAndAssembles(t *testing.T) {
	streamer := &mockStreamer{
		StreamChatFunc: func(_ context.Context, _ string, onChunk func(text string) error) error {
			for _, chunk := range []string{"The printer ", "needs a ", "**restart**."} {
				if err := onChunk(chunk); err != nil {
					return err
				}
			}
			return nil
		},
	}
	uc := NewChatUseCase(streamer, markdown.NewService(), logger.NewLogger())

	var received []string
	result, err := uc.Execute(context.Background(), ChatCommand{Prompt: "printer offline", UserID: 4}, func(text string) error {
		received = append(received, text)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"The printer ", "needs a ", "**restart**."}, received)
	assert.Equal(t, "The printer needs a **restart**.", result.Answer)
	assert.Contains(t, result.AnswerHTML, "<strong>restart</strong>")
	assert.Equal(t, []string{"printer offline"}, streamer.prompts)
}

func TestChat_EmptyPrompt(t *testing.T) {
	uc := NewChatUseCase(&mockStreamer{}, nil, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChatCommand{Prompt: "   "}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestChat_StreamerFailure(t *testing.T) {
	streamer := &mockStreamer{
		StreamChatFunc: func(_ context.Context, _ string, _ func(text string) error) error {
			return fmt.Errorf("upstream timeout")
		},
	}
	uc := NewChatUseCase(streamer, nil, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChatCommand{Prompt: "help"}, nil)
	require.Error(t, err)

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ErrorTypeInternal, appErr.Type)
}

func TestChat_CallbackErrorPropagates(t *testing.T) {
	streamer := &mockStreamer{
		StreamChatFunc: func(_ context.Context, _ string, onChunk func(text string) error) error {
			return onChunk("chunk")
		},
	}
	uc := NewChatUseCase(streamer, nil, logger.NewLogger())

	_, err := uc.Execute(context.Background(), ChatCommand{Prompt: "help"}, func(string) error {
		return fmt.Errorf("client went away")
	})
	require.Error(t, err)
}
