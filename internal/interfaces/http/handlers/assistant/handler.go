package assistant

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/assistant/usecases"
	raguc "haitch/internal/application/rag/usecases"
	"haitch/internal/shared/constants"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

type chatExecutor interface {
	Execute(ctx context.Context, cmd usecases.ChatCommand, onChunk func(text string) error) (*usecases.ChatResult, error)
}

type questionIntake interface {
	Create(ctx context.Context, question, answer string) (*raguc.QuestionDetail, error)
}

type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required,max=4000"`
	// Stream selects server-sent events instead of a single JSON response.
	Stream bool `json:"stream"`
}

type AskQuestionRequest struct {
	Question string `json:"question" binding:"required,max=2000"`
}

type AssistantHandler struct {
	chat      chatExecutor
	questions questionIntake
	logger    logger.Interface
}

func NewAssistantHandler(chat chatExecutor, questions questionIntake, log logger.Interface) *AssistantHandler {
	return &AssistantHandler{
		chat:      chat,
		questions: questions,
		logger:    log,
	}
}

// Chat handles POST /assistant/chat
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd := usecases.ChatCommand{
		Prompt: req.Prompt,
		UserID: c.GetUint(constants.ContextKeyUserID),
	}

	if !req.Stream {
		result, err := h.chat.Execute(c.Request.Context(), cmd, nil)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, result)
		return
	}

	h.streamChat(c, cmd)
}

// AskQuestion handles POST /assistant/questions
//
// Questions arrive without an answer; the knowledge team fills one in later
// and the upload scheduler pushes the pair to the remote index.
func (h *AssistantHandler) AskQuestion(c *gin.Context) {
	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	detail, err := h.questions.Create(c.Request.Context(), req.Question, "")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, detail)
}

// streamChat writes answer fragments as SSE data events, then a final "done"
// event carrying the assembled answer. Errors after the first fragment can no
// longer change the status code, so they are reported as an "error" event.
func (h *AssistantHandler) streamChat(c *gin.Context, cmd usecases.ChatCommand) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	result, err := h.chat.Execute(c.Request.Context(), cmd, func(text string) error {
		c.SSEvent("message", gin.H{"text": text})
		c.Writer.Flush()
		return nil
	})
	if err != nil {
		h.logger.Warnw("assistant stream ended with error", "user_id", cmd.UserID, "error", err)
		c.SSEvent("error", gin.H{"message": "assistant is unavailable"})
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", gin.H{
		"answer":      result.Answer,
		"answer_html": result.AnswerHTML,
	})
	c.Writer.Flush()
}
