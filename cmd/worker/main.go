package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/config/postgre"
	retryDelivery "tenant-maintenance-assistant/internal/dispatch/delivery/asynq"
	dispatchRepo "tenant-maintenance-assistant/internal/dispatch/repository/postgre"
	dispatchUC "tenant-maintenance-assistant/internal/dispatch/usecase"
	maintenanceRepo "tenant-maintenance-assistant/internal/maintenance/repository/postgre"
	maintenanceUC "tenant-maintenance-assistant/internal/maintenance/usecase"
	"tenant-maintenance-assistant/pkg/log"
)

// main runs the background worker that retries vendor dispatch for requests
// stored while the vendor registry was unreachable.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting dispatch worker...")

	if !cfg.Queue.Enabled {
		logger.Warn(ctx, "Queue disabled (queue.enabled=false), nothing to do")
		return
	}

	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	selector, err := dispatchUC.NewSelector(cfg.Dispatch.Selector)
	if err != nil {
		logger.Error(ctx, "Invalid dispatch selector: ", err)
		return
	}

	uc := maintenanceUC.New(logger, maintenanceUC.Deps{
		Repo:       maintenanceRepo.New(postgresDB, logger),
		Dispatcher: dispatchUC.New(dispatchRepo.New(postgresDB, logger), selector, logger),
	})

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Queue.RedisDB,
		},
		asynq.Config{
			Concurrency: cfg.Queue.Concurrency,
			Queues:      map[string]int{"default": 1},
		},
	)

	mux := asynq.NewServeMux()
	retryDelivery.RegisterHandlers(mux, retryDelivery.New(logger, uc))

	if err := srv.Start(mux); err != nil {
		logger.Error(ctx, "Failed to start worker: ", err)
		return
	}

	logger.Info(ctx, "Dispatch worker running. Waiting for shutdown signal...")
	<-ctx.Done()
	srv.Shutdown()
	logger.Info(ctx, "Dispatch worker stopped gracefully")
}
