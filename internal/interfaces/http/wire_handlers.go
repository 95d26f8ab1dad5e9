package http

import (
	assistantHandlers "haitch/internal/interfaces/http/handlers/assistant"
	manageHandlers "haitch/internal/interfaces/http/handlers/manage"
	ragHandlers "haitch/internal/interfaces/http/handlers/rag"
	surveyHandlers "haitch/internal/interfaces/http/handlers/survey"
	ticketHandlers "haitch/internal/interfaces/http/handlers/ticket"
	userHandlers "haitch/internal/interfaces/http/handlers/user"
	wechatHandlers "haitch/internal/interfaces/http/handlers/wechat"
)

type allHandlers struct {
	userHandler      *userHandlers.UserHandler
	ticketHandler    *ticketHandlers.TicketHandler
	catalogHandler   *manageHandlers.CatalogHandler
	knowledgeHandler *ragHandlers.KnowledgeHandler
	surveyHandler    *surveyHandlers.SurveyHandler
	assistantHandler *assistantHandlers.AssistantHandler
	wechatHandler    *wechatHandlers.WeChatHandler
}

// ============================================================
// Section 3: Handlers
// ============================================================

func (c *Container) initHandlers() {
	log := c.log
	ucs := c.ucs

	c.hdlrs = &allHandlers{
		userHandler: userHandlers.NewUserHandler(
			ucs.registerUserUC,
			ucs.loginUC,
			ucs.getUserUC,
			ucs.listUsersUC,
			ucs.updateUserUC,
			ucs.deleteUserUC,
			log,
		),
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.searchTicketUC,
			ucs.updateTicketUC,
			ucs.deleteTicketUC,
			c.fileStore,
			c.repos.attachmentRepo,
			log,
		),
		catalogHandler:   manageHandlers.NewCatalogHandler(ucs.deviceModelUCs, ucs.customerUCs, log),
		knowledgeHandler: ragHandlers.NewKnowledgeHandler(ucs.questionUCs, ucs.documentUCs, c.fileStore, log),
		surveyHandler:    surveyHandlers.NewSurveyHandler(ucs.surveyUCs, ucs.responseUCs, log),
		assistantHandler: assistantHandlers.NewAssistantHandler(ucs.chatUC, ucs.questionUCs, log),
		wechatHandler:    wechatHandlers.NewWeChatHandler(c.cfg.WeChat.Token, log),
	}
}
