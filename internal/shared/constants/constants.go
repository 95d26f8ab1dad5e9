package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Knowledge-base source row kinds
	SourceTicket   = "ticket"
	SourceQuestion = "question"
	SourceDocument = "document"

	// Row processing status for knowledge-base uploads
	StatusPending   = 0
	StatusProcessed = 1

	// Database table names
	TableUsers                = "users"
	TableUserHistories        = "user_histories"
	TableTickets              = "tickets"
	TableAttachments          = "attachments"
	TableTicketAttachmentLink = "ticket_attachment_links"
	TableTicketHistories      = "ticket_histories"
	TableDeviceModels         = "device_models"
	TableCustomers            = "customers"
	TableQuestions            = "questions"
	TableDocuments            = "documents"
	TableSurveys              = "surveys"
	TableSurveyQuestions      = "survey_questions"
	TableSurveyOptions        = "survey_options"
	TableSurveyResponses      = "survey_responses"
	TableSurveyAnswers        = "survey_answers"
	TableSurveyAnswerChoices  = "survey_answer_choices"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
