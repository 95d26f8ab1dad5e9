package usecases

import (
	"context"
	"strings"

	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/services/markdown"
)

const maxPromptLength = 4000

// ChatStreamer streams incremental answer fragments for a prompt.
type ChatStreamer interface {
	StreamChat(ctx context.Context, prompt string, onChunk func(text string) error) error
}

type ChatCommand struct {
	Prompt string
	UserID uint
}

// ChatResult holds the complete answer after streaming finishes.
type ChatResult struct {
	Answer     string
	AnswerHTML string
}

// ChatUseCase forwards a prompt to the knowledge-backed assistant and relays
// answer fragments to the caller as they arrive.
type ChatUseCase struct {
	streamer ChatStreamer
	renderer markdown.Service
	logger   logger.Interface
}

func NewChatUseCase(streamer ChatStreamer, renderer markdown.Service, log logger.Interface) *ChatUseCase {
	return &ChatUseCase{
		streamer: streamer,
		renderer: renderer,
		logger:   log,
	}
}

// Execute streams the answer through onChunk and returns the assembled result.
// The assistant replies in markdown; AnswerHTML is the sanitized rendering.
func (uc *ChatUseCase) Execute(ctx context.Context, cmd ChatCommand, onChunk func(text string) error) (*ChatResult, error) {
	prompt := strings.TrimSpace(cmd.Prompt)
	if prompt == "" {
		return nil, errors.NewValidationError("prompt is required")
	}
	if len(prompt) > maxPromptLength {
		return nil, errors.NewValidationError("prompt is too long")
	}

	var answer strings.Builder
	err := uc.streamer.StreamChat(ctx, prompt, func(text string) error {
		answer.WriteString(text)
		if onChunk != nil {
			return onChunk(text)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("assistant chat failed", "user_id", cmd.UserID, "error", err)
		return nil, errors.NewInternalError("assistant is unavailable")
	}

	result := &ChatResult{Answer: answer.String()}
	if uc.renderer != nil {
		rendered, err := uc.renderer.ToHTMLSanitized(result.Answer)
		if err != nil {
			uc.logger.Warnw("failed to render assistant answer", "error", err)
		} else {
			result.AnswerHTML = rendered
		}
	}

	uc.logger.Infow("assistant chat completed", "user_id", cmd.UserID, "answer_length", len(result.Answer))
	return result, nil
}
