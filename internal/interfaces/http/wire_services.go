package http

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"haitch/internal/domain/catalog"
	"haitch/internal/domain/rag"
	"haitch/internal/domain/survey"
	"haitch/internal/domain/ticket"
	"haitch/internal/domain/user"
	"haitch/internal/infrastructure/auth"
	"haitch/internal/infrastructure/bailian"
	"haitch/internal/infrastructure/config"
	"haitch/internal/infrastructure/ratelimit"
	"haitch/internal/infrastructure/repository"
	"haitch/internal/infrastructure/scheduler"
	"haitch/internal/infrastructure/storage"
	"haitch/internal/interfaces/http/middleware"
	shareddb "haitch/internal/shared/db"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/services/markdown"
)

type repositories struct {
	userRepo          user.Repository
	userHistoryRepo   user.HistoryRepository
	ticketRepo        ticket.Repository
	attachmentRepo    ticket.AttachmentRepository
	ticketHistoryRepo ticket.HistoryRepository
	deviceModelRepo   catalog.DeviceModelRepository
	customerRepo      catalog.CustomerRepository
	questionRepo      rag.QuestionRepository
	documentRepo      rag.DocumentRepository
	surveyRepo        survey.Repository
	surveyResponses   survey.ResponseRepository
}

// ============================================================
// Section 1: Infrastructure - Redis, repositories, auth, storage
// ============================================================

func (c *Container) initInfrastructure() {
	cfg := c.cfg
	log := c.log

	c.redis = initRedis(cfg, log)
	c.repos = newRepositories(c.db, log)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.txManager = shareddb.NewTransactionManager(c.db)

	fileStore, err := storage.NewLocalStore(&cfg.Upload, log)
	if err != nil {
		log.Fatalw("failed to initialize upload storage", "error", err, "dir", cfg.Upload.Dir)
	}
	c.fileStore = fileStore

	c.knowledgeClient = bailian.NewClient(&cfg.Knowledge, log)
	c.markdownSvc = markdown.NewService()

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	limiter := ratelimit.NewFixedWindowLimiter(
		ratelimit.NewRedisStore(c.redis),
		cfg.RateLimit.PerHour,
		cfg.RateLimit.PerDay,
	)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(limiter, log)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established successfully")

	return redisClient
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:          repository.NewUserRepository(db, log),
		userHistoryRepo:   repository.NewUserHistoryRepository(db),
		ticketRepo:        repository.NewTicketRepository(db, log),
		attachmentRepo:    repository.NewAttachmentRepository(db, log),
		ticketHistoryRepo: repository.NewTicketHistoryRepository(db),
		deviceModelRepo:   repository.NewDeviceModelRepository(db, log),
		customerRepo:      repository.NewCustomerRepository(db, log),
		questionRepo:      repository.NewQuestionRepository(db, log),
		documentRepo:      repository.NewDocumentRepository(db, log),
		surveyRepo:        repository.NewSurveyRepository(db, log),
		surveyResponses:   repository.NewSurveyResponseRepository(db),
	}
}

// ============================================================
// Section 4: Background upload scheduler
// ============================================================

func (c *Container) initScheduler() {
	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		c.log.Fatalw("failed to create scheduler", "error", err)
	}
	c.schedulerManager = manager

	interval := time.Duration(c.cfg.Scheduler.IntervalMinutes) * time.Minute

	if err := manager.RegisterKnowledgeUploadJobs(c.ucs.uploadPendingQuestionsUC, interval); err != nil {
		c.log.Fatalw("failed to register question upload job", "error", err)
	}
	if err := manager.RegisterTicketUploadJobs(c.ucs.uploadPendingTicketsUC, interval); err != nil {
		c.log.Fatalw("failed to register ticket upload job", "error", err)
	}
}
