package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/config/postgre"
	"tenant-maintenance-assistant/config/redis"
	_ "tenant-maintenance-assistant/docs" // Swagger docs
	dispatchRepo "tenant-maintenance-assistant/internal/dispatch/repository/postgre"
	"tenant-maintenance-assistant/internal/dispatch/queue"
	dispatchUC "tenant-maintenance-assistant/internal/dispatch/usecase"
	"tenant-maintenance-assistant/internal/faq"
	"tenant-maintenance-assistant/internal/httpserver"
	tgDelivery "tenant-maintenance-assistant/internal/intake/delivery/telegram"
	intakeRepo "tenant-maintenance-assistant/internal/intake/repository"
	intakeMemory "tenant-maintenance-assistant/internal/intake/repository/memory"
	intakeRedis "tenant-maintenance-assistant/internal/intake/repository/redis"
	intakeUC "tenant-maintenance-assistant/internal/intake/usecase"
	maintenanceRepo "tenant-maintenance-assistant/internal/maintenance/repository/postgre"
	maintenanceUC "tenant-maintenance-assistant/internal/maintenance/usecase"
	notificationUC "tenant-maintenance-assistant/internal/notification/usecase"
	triageUC "tenant-maintenance-assistant/internal/triage/usecase"
	"tenant-maintenance-assistant/pkg/llmprovider"
	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/telegram"
)

// @title       Tenant Maintenance Assistant API
// @description Tenant maintenance intake, LLM triage and vendor dispatch.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tenant Maintenance Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Infrastructure
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer redis.Disconnect(redisClient)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	managerCfg, err := llmprovider.NewConfig(cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM timing config: ", err)
		return
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 5. Triage
	classifier, err := triageUC.New(logger, llm, triageUC.Config{
		Temperature: cfg.Triage.Temperature,
		MaxTokens:   cfg.Triage.MaxTokens,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize triage: ", err)
		return
	}

	// 6. Dispatch
	selector, err := dispatchUC.NewSelector(cfg.Dispatch.Selector)
	if err != nil {
		logger.Error(ctx, "Invalid dispatch selector: ", err)
		return
	}
	dispatcher := dispatchUC.New(dispatchRepo.New(postgresDB, logger), selector, logger)

	var retries queue.Enqueuer = queue.NopEnqueuer{}
	if cfg.Queue.Enabled {
		queueClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Queue.RedisDB,
		})
		defer queueClient.Close()
		retries = queue.NewProducer(queueClient, cfg.Queue.MaxRetry, logger)
		logger.Info(ctx, "Dispatch retry queue enabled")
	}

	// 7. Telegram bot (optional)
	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
	}

	// 8. Notification
	notifier := notificationUC.New(logger, notificationChannels(ctx, cfg, bot, logger)...)

	// 9. Maintenance pipeline
	maintenance := maintenanceUC.New(logger, maintenanceUC.Deps{
		Repo:       maintenanceRepo.New(postgresDB, logger),
		Classifier: classifier,
		Dispatcher: dispatcher,
		Retries:    retries,
		Notifier:   notifier,
	})

	// 10. Intake
	var sessions intakeRepo.Repository
	switch cfg.Intake.SessionStore {
	case "memory":
		sessions = intakeMemory.New(cfg.Intake.MaxSessions, cfg.Intake.SessionTTL)
	default:
		sessions = intakeRedis.New(redisClient, cfg.Intake.SessionTTL, logger)
	}
	logger.Infof(ctx, "Session store: %s", cfg.Intake.SessionStore)
	intake := intakeUC.New(logger, sessions, faq.New(cfg.Intake.FAQ), maintenance)

	var telegramHandler tgDelivery.Handler
	if bot != nil {
		telegramHandler = tgDelivery.New(logger, intake, bot, tgDelivery.Config{
			TenantID:       cfg.Telegram.TenantID,
			RequestsPerMin: cfg.Telegram.RequestsPerMin,
		})
		registerWebhook(ctx, cfg.Telegram, bot, logger)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 11. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimit:       cfg.RateLimit,
		PostgresDB:      postgresDB,
		Redis:           redisClient,
		MaintenanceUC:   maintenance,
		TriageUC:        classifier,
		IntakeUC:        intake,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 12. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points the bot at this service, auto-detecting an ngrok tunnel
// when no URL is configured.
func registerWebhook(ctx context.Context, cfg config.TelegramConfig, bot *telegram.Bot, logger log.Logger) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" {
		detectCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		ngrokURL, err := detectNgrokURL(detectCtx, cfg.NgrokAPIBase)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
