package ticket

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"haitch/internal/application/ticket/usecases"
	"haitch/internal/shared/errors"
	"haitch/internal/shared/utils"
)

// CreateTicketForm is bound from a multipart form so attachments can ride
// along with the ticket fields.
type CreateTicketForm struct {
	Title            string                  `form:"title" binding:"required,max=200"`
	DeviceModel      string                  `form:"device_model" binding:"required,max=100"`
	Customer         string                  `form:"customer" binding:"required,max=100"`
	FaultDescription string                  `form:"fault_description" binding:"required,max=5000"`
	HandleProcess    string                  `form:"handle_process" binding:"omitempty,max=5000"`
	HandlerName      string                  `form:"handler_name" binding:"omitempty,max=50"`
	Files            []*multipart.FileHeader `form:"files"`
}

type UpdateTicketForm struct {
	Title             string                  `form:"title" binding:"required,max=200"`
	DeviceModel       string                  `form:"device_model" binding:"required,max=100"`
	Customer          string                  `form:"customer" binding:"required,max=100"`
	FaultDescription  string                  `form:"fault_description" binding:"required,max=5000"`
	HandleProcess     string                  `form:"handle_process" binding:"omitempty,max=5000"`
	Status            string                  `form:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	HandlerName       string                  `form:"handler_name" binding:"omitempty,max=50"`
	DeleteAttachments string                  `form:"delete_attachments"`
	Files             []*multipart.FileHeader `form:"files"`
}

// parseDeleteAttachmentIDs splits the comma separated id list from the form.
func parseDeleteAttachmentIDs(raw string) ([]uint, error) {
	if raw == "" {
		return nil, nil
	}

	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid attachment id: " + part)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

func parseListTicketsQuery(c *gin.Context) usecases.ListTicketsQuery {
	p := utils.GetPagination(c)
	return usecases.ListTicketsQuery{
		Page:        p.Page,
		PageSize:    p.PageSize,
		DeviceModel: c.Query("device_model"),
		Customer:    c.Query("customer"),
		Status:      c.Query("status"),
	}
}
