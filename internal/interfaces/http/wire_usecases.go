package http

import (
	assistantUsecases "haitch/internal/application/assistant/usecases"
	catalogUsecases "haitch/internal/application/catalog/usecases"
	ragUsecases "haitch/internal/application/rag/usecases"
	surveyUsecases "haitch/internal/application/survey/usecases"
	ticketUsecases "haitch/internal/application/ticket/usecases"
	userUsecases "haitch/internal/application/user/usecases"
)

type allUseCases struct {
	// User
	registerUserUC *userUsecases.RegisterUserUseCase
	loginUC        *userUsecases.LoginUseCase
	getUserUC      *userUsecases.GetUserUseCase
	listUsersUC    *userUsecases.ListUsersUseCase
	updateUserUC   *userUsecases.UpdateUserUseCase
	deleteUserUC   *userUsecases.DeleteUserUseCase

	// Ticket
	createTicketUC *ticketUsecases.CreateTicketUseCase
	getTicketUC    *ticketUsecases.GetTicketUseCase
	listTicketsUC  *ticketUsecases.ListTicketsUseCase
	searchTicketUC *ticketUsecases.SearchTicketsUseCase
	updateTicketUC *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC *ticketUsecases.DeleteTicketUseCase

	// Catalog
	deviceModelUCs *catalogUsecases.DeviceModelUseCases
	customerUCs    *catalogUsecases.CustomerUseCases

	// Knowledge base
	questionUCs *ragUsecases.QuestionUseCases
	documentUCs *ragUsecases.DocumentUseCases

	// Survey
	surveyUCs   *surveyUsecases.SurveyUseCases
	responseUCs *surveyUsecases.ResponseUseCases

	// Assistant
	chatUC *assistantUsecases.ChatUseCase

	// Background upload jobs
	uploadPendingQuestionsUC *ragUsecases.UploadPendingQuestionsUseCase
	uploadPendingTicketsUC   *ticketUsecases.UploadPendingTicketsUseCase
}

// ============================================================
// Section 2: Use cases
// ============================================================

func (c *Container) initUseCases() {
	log := c.log
	repos := c.repos

	uploadsPerSec := int(c.cfg.Scheduler.UploadsPerSec)

	c.ucs = &allUseCases{
		registerUserUC: userUsecases.NewRegisterUserUseCase(repos.userRepo, repos.userHistoryRepo, c.hasher, log),
		loginUC:        userUsecases.NewLoginUseCase(repos.userRepo, c.hasher, c.jwtSvc, log),
		getUserUC:      userUsecases.NewGetUserUseCase(repos.userRepo, log),
		listUsersUC:    userUsecases.NewListUsersUseCase(repos.userRepo, log),
		updateUserUC:   userUsecases.NewUpdateUserUseCase(repos.userRepo, repos.userHistoryRepo, c.hasher, log),
		deleteUserUC:   userUsecases.NewDeleteUserUseCase(repos.userRepo, repos.userHistoryRepo, log),

		createTicketUC: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.attachmentRepo, repos.ticketHistoryRepo, c.knowledgeClient, c.txManager, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, repos.attachmentRepo, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, log),
		searchTicketUC: ticketUsecases.NewSearchTicketsUseCase(repos.ticketRepo, log),
		updateTicketUC: ticketUsecases.NewUpdateTicketUseCase(repos.ticketRepo, repos.attachmentRepo, repos.ticketHistoryRepo, c.knowledgeClient, c.fileStore, c.txManager, log),
		deleteTicketUC: ticketUsecases.NewDeleteTicketUseCase(repos.ticketRepo, repos.attachmentRepo, repos.ticketHistoryRepo, c.knowledgeClient, c.fileStore, c.txManager, log),

		deviceModelUCs: catalogUsecases.NewDeviceModelUseCases(repos.deviceModelRepo, log),
		customerUCs:    catalogUsecases.NewCustomerUseCases(repos.customerRepo, log),

		questionUCs: ragUsecases.NewQuestionUseCases(repos.questionRepo, c.knowledgeClient, log),
		documentUCs: ragUsecases.NewDocumentUseCases(repos.documentRepo, c.knowledgeClient, c.fileStore, log),

		surveyUCs:   surveyUsecases.NewSurveyUseCases(repos.surveyRepo, repos.surveyResponses, log),
		responseUCs: surveyUsecases.NewResponseUseCases(repos.surveyRepo, repos.surveyResponses, log),

		chatUC: assistantUsecases.NewChatUseCase(c.knowledgeClient, c.markdownSvc, log),

		uploadPendingQuestionsUC: ragUsecases.NewUploadPendingQuestionsUseCase(repos.questionRepo, c.knowledgeClient, c.txManager, uploadsPerSec, log),
		uploadPendingTicketsUC:   ticketUsecases.NewUploadPendingTicketsUseCase(repos.ticketRepo, c.knowledgeClient, uploadsPerSec, log),
	}
}
