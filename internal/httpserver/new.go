package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/internal/intake"
	tgDelivery "tenant-maintenance-assistant/internal/intake/delivery/telegram"
	"tenant-maintenance-assistant/internal/maintenance"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Readiness
	postgresDB *sql.DB
	redis      goredis.Cmdable

	// Domains
	maintenanceUC   maintenance.UseCase
	triageUC        triage.UseCase
	intakeUC        intake.UseCase
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	PostgresDB *sql.DB
	Redis      goredis.Cmdable

	MaintenanceUC maintenance.UseCase
	TriageUC      triage.UseCase
	IntakeUC      intake.UseCase

	// Optional: nil when no bot token is configured.
	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimit:       cfg.RateLimit,
		postgresDB:      cfg.PostgresDB,
		redis:           cfg.Redis,
		maintenanceUC:   cfg.MaintenanceUC,
		triageUC:        cfg.TriageUC,
		intakeUC:        cfg.IntakeUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.maintenanceUC == nil {
		return errors.New("maintenance usecase is required")
	}
	if srv.triageUC == nil {
		return errors.New("triage usecase is required")
	}
	if srv.intakeUC == nil {
		return errors.New("intake usecase is required")
	}
	return nil
}
