package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"haitch/internal/infrastructure/auth"
	"haitch/internal/infrastructure/bailian"
	"haitch/internal/infrastructure/config"
	"haitch/internal/infrastructure/scheduler"
	"haitch/internal/infrastructure/storage"
	"haitch/internal/interfaces/http/middleware"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
	"haitch/internal/shared/services/markdown"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and provides Shutdown() for graceful
// termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware

	// Infrastructure services
	jwtSvc          *auth.JWTService
	hasher          *auth.BcryptPasswordHasher
	txManager       *db.TransactionManager
	fileStore       *storage.LocalStore
	knowledgeClient *bailian.Client
	markdownSvc     markdown.Service

	// Background services
	schedulerManager *scheduler.SchedulerManager
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(database *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, auth, storage, remote clients
	c.initInfrastructure()

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers
	c.initHandlers()

	// Section 4: Background upload scheduler
	c.initScheduler()

	return c
}

// GetEngine returns the underlying gin engine.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// StartBackgroundServices starts the knowledge upload scheduler.
func (c *Container) StartBackgroundServices() {
	c.schedulerManager.Start()
}

// Shutdown stops background services and closes external connections.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Errorw("failed to stop scheduler", "error", err)
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close Redis connection", "error", err)
		}
	}
}
