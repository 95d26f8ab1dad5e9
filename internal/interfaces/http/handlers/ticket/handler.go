package ticket

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/ticket/usecases"
	"haitch/internal/domain/ticket"
	"haitch/internal/infrastructure/storage"
	"haitch/internal/shared/constants"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/utils"
)

// Use case interfaces for TicketHandler - enables unit testing with mocks.

type createTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateTicketCommand) (*usecases.CreateTicketResult, error)
}

type getTicketExecutor interface {
	Execute(ctx context.Context, ticketID uint) (*usecases.TicketDetail, error)
}

type listTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

type searchTicketsExecutor interface {
	Execute(ctx context.Context, query usecases.SearchTicketsQuery) (*usecases.ListTicketsResult, error)
}

type updateTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateTicketCommand) (*usecases.TicketDetail, error)
}

type deleteTicketExecutor interface {
	Execute(ctx context.Context, cmd usecases.DeleteTicketCommand) error
}

// fileSaver persists uploaded files to local storage.
type fileSaver interface {
	Save(header *multipart.FileHeader) (*storage.StoredFile, error)
	Open(path string) (*os.File, error)
}

// attachmentFinder resolves attachment rows for download.
type attachmentFinder interface {
	GetByID(ctx context.Context, id uint) (*ticket.Attachment, error)
}

type TicketHandler struct {
	createUC    createTicketExecutor
	getUC       getTicketExecutor
	listUC      listTicketsExecutor
	searchUC    searchTicketsExecutor
	updateUC    updateTicketExecutor
	deleteUC    deleteTicketExecutor
	files       fileSaver
	attachments attachmentFinder
	logger      logger.Interface
}

func NewTicketHandler(
	createUC createTicketExecutor,
	getUC getTicketExecutor,
	listUC listTicketsExecutor,
	searchUC searchTicketsExecutor,
	updateUC updateTicketExecutor,
	deleteUC deleteTicketExecutor,
	files fileSaver,
	attachments attachmentFinder,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:    createUC,
		getUC:       getUC,
		listUC:      listUC,
		searchUC:    searchUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		files:       files,
		attachments: attachments,
		logger:      log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var form CreateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid form for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	attachments, err := h.saveFiles(form.Files)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:            form.Title,
		DeviceModel:      form.DeviceModel,
		Customer:         form.Customer,
		FaultDescription: form.FaultDescription,
		HandleProcess:    form.HandleProcess,
		HandlerName:      form.HandlerName,
		CreatorID:        c.GetUint(constants.ContextKeyUserID),
		Attachments:      attachments,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, result)
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := parseListTicketsQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, query.Page, query.PageSize)
}

// ListMyTickets handles GET /tickets/mine
func (h *TicketHandler) ListMyTickets(c *gin.Context) {
	query := parseListTicketsQuery(c)
	query.CreatorID = c.GetUint(constants.ContextKeyUserID)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, query.Page, query.PageSize)
}

// SearchTickets handles GET /tickets/search
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	p := utils.GetPagination(c)
	query := usecases.SearchTicketsQuery{
		Keyword:  c.Query("keyword"),
		Page:     p.Page,
		PageSize: p.PageSize,
	}

	result, err := h.searchUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, p.Page, p.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var form UpdateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	deleteIDs, err := parseDeleteAttachmentIDs(form.DeleteAttachments)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	attachments, err := h.saveFiles(form.Files)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:            ticketID,
		Title:               form.Title,
		DeviceModel:         form.DeviceModel,
		Customer:            form.Customer,
		FaultDescription:    form.FaultDescription,
		HandleProcess:       form.HandleProcess,
		Status:              form.Status,
		HandlerName:         form.HandlerName,
		NewAttachments:      attachments,
		DeleteAttachmentIDs: deleteIDs,
		OperatorID:          c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID:   ticketID,
		OperatorID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponseWithMessage(c, http.StatusOK, "ticket deleted", nil)
}

// DownloadAttachment handles GET /tickets/attachments/:id
func (h *TicketHandler) DownloadAttachment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid attachment id"))
		return
	}

	attachment, err := h.attachments.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if attachment == nil {
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment not found"))
		return
	}

	file, err := h.files.Open(attachment.Path())
	if err != nil {
		h.logger.Errorw("failed to open attachment", "attachment_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("attachment file missing"))
		return
	}
	defer file.Close()

	disposition := "attachment"
	if c.Query("preview") == "true" {
		disposition = "inline"
	}

	c.DataFromReader(http.StatusOK, attachment.Size(), attachment.MimeType(), file, map[string]string{
		"Content-Disposition": fmt.Sprintf("%s; filename=%q", disposition, attachment.FileName()),
	})
}

func (h *TicketHandler) saveFiles(headers []*multipart.FileHeader) ([]usecases.AttachmentInput, error) {
	var attachments []usecases.AttachmentInput
	for _, header := range headers {
		stored, err := h.files.Save(header)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, usecases.AttachmentInput{
			FileName:   stored.FileName,
			StoredName: stored.StoredName,
			Path:       stored.Path,
			Size:       stored.Size,
			MimeType:   stored.MimeType,
		})
	}
	return attachments, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}
