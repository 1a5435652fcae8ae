package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/client"
	"github.com/spec-kit/ticket-console/internal/auth"
	"github.com/spec-kit/ticket-console/internal/config"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/internal/observability"
	"github.com/spec-kit/ticket-console/internal/service"
	"github.com/spec-kit/ticket-console/internal/tui"
	"github.com/spec-kit/ticket-console/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	session := auth.NewSession(cfg.API.Token)
	if session.Expired(time.Now()) {
		logger.Fatal("session token expired")
	}
	logger.Info("session established",
		zap.String("user", session.Fullname()),
		zap.String("role", session.Role()))

	apiClient := client.New(cfg.API, session, logger)
	dispatcher := events.NewInMemoryDispatcher()
	notices := tui.NewNotices()

	badges := service.NewBadgeService(apiClient, logger)
	badges.RegisterHandlers(dispatcher)

	services := tui.Services{
		Queues:     service.NewQueueService(apiClient, logger),
		Approvals:  service.NewApprovalService(apiClient, dispatcher, notices, logger),
		Badges:     badges,
		History:    service.NewHistoryService(apiClient, logger),
		Intake:     service.NewConcernIntakeService(apiClient, dispatcher, notices, logger),
		Concerns:   apiClient,
		Masterlist: apiClient,
		Closer:     apiClient,
		Remover:    apiClient,
		Dispatcher: dispatcher,
		Logger:     logger,
	}

	if cfg.Realtime.Enabled {
		realtime := worker.NewRealtimeWorker(cfg.Realtime.URL, dispatcher, logger)
		go realtime.Run(ctx)
	}

	model := tui.New(ctx, services, notices, cfg.UI.DefaultPageSize, cfg.UI.Debounce())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		logger.Fatal("console exited", zap.Error(err))
	}
}
