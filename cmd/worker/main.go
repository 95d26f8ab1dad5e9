package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	ragUsecases "haitch/internal/application/rag/usecases"
	ticketUsecases "haitch/internal/application/ticket/usecases"
	"haitch/internal/infrastructure/bailian"
	"haitch/internal/infrastructure/config"
	"haitch/internal/infrastructure/database"
	"haitch/internal/infrastructure/repository"
	"haitch/internal/infrastructure/scheduler"
	"haitch/internal/shared/db"
	"haitch/internal/shared/logger"
)

// The worker runs the knowledge upload jobs without serving HTTP, so the
// upload pipeline keeps draining even when the API instances are redeployed.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting knowledge upload worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	questionRepo := repository.NewQuestionRepository(database.Get(), log)
	ticketRepo := repository.NewTicketRepository(database.Get(), log)
	txManager := db.NewTransactionManager(database.Get())
	knowledgeClient := bailian.NewClient(&cfg.Knowledge, log)

	uploadsPerSec := int(cfg.Scheduler.UploadsPerSec)
	questionJob := ragUsecases.NewUploadPendingQuestionsUseCase(questionRepo, knowledgeClient, txManager, uploadsPerSec, log)
	ticketJob := ticketUsecases.NewUploadPendingTicketsUseCase(ticketRepo, knowledgeClient, uploadsPerSec, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		log.Fatalw("failed to create scheduler", "error", err)
	}

	interval := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
	if err := manager.RegisterKnowledgeUploadJobs(questionJob, interval); err != nil {
		log.Fatalw("failed to register question upload job", "error", err)
	}
	if err := manager.RegisterTicketUploadJobs(ticketJob, interval); err != nil {
		log.Fatalw("failed to register ticket upload job", "error", err)
	}

	manager.Start()
	log.Infow("knowledge upload worker started", "interval", interval.String())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	log.Infow("received signal, shutting down", "signal", sig)

	if err := manager.Stop(); err != nil {
		log.Errorw("scheduler shutdown failed", "error", err)
	}

	log.Infow("knowledge upload worker stopped")
}
