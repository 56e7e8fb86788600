package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Infrastructure
	Postgres PostgresConfig
	Redis    RedisConfig
	Queue    QueueConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Maintenance assistant specifics
	Intake       IntakeConfig
	Triage       TriageConfig
	Dispatch     DispatchConfig
	Notification NotificationConfig
	Telegram     TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	Enabled        bool
	RequestsPerMin int
	MaxKeys        int
}

type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DSN builds the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// QueueConfig configures the asynq queue used for out-of-band dispatch retries.
type QueueConfig struct {
	Enabled     bool
	RedisDB     int
	Concurrency int
	MaxRetry    int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	MaxAttempts     int              `yaml:"max_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	AttemptTimeout  string           `yaml:"attempt_timeout"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type IntakeConfig struct {
	SessionStore string // "redis" or "memory"
	SessionTTL   time.Duration
	MaxSessions  int
	FAQ          map[string]string
}

type TriageConfig struct {
	Temperature float64
	MaxTokens   int
}

type DispatchConfig struct {
	Selector string // "first" or "round_robin"
}

type NotificationConfig struct {
	RecipientEmail string
	SenderEmail    string
	SES            SESConfig
	SNS            SNSConfig
	Gmail          GmailConfig
	StaffChatID    int64
}

type SESConfig struct {
	Enabled bool
	Region  string
}

type SNSConfig struct {
	Enabled     bool
	Region      string
	PhoneNumber string
}

type GmailConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
}

type TelegramConfig struct {
	BotToken     string
	WebhookURL   string
	NgrokAPIBase string

	// TenantID scopes every Telegram conversation; one bot serves one tenant.
	TenantID       string
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxKeys = viper.GetInt("rate_limit.max_keys")

	// Infrastructure
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	cfg.Queue.Enabled = viper.GetBool("queue.enabled")
	cfg.Queue.RedisDB = viper.GetInt("queue.redis_db")
	cfg.Queue.Concurrency = viper.GetInt("queue.concurrency")
	cfg.Queue.MaxRetry = viper.GetInt("queue.max_retry")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.MaxAttempts = viper.GetInt("llm.max_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.AttemptTimeout = viper.GetString("llm.attempt_timeout")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("invalid llm config: %w", err)
	}

	// Intake
	cfg.Intake.SessionStore = viper.GetString("intake.session_store")
	cfg.Intake.SessionTTL = viper.GetDuration("intake.session_ttl")
	cfg.Intake.MaxSessions = viper.GetInt("intake.max_sessions")
	cfg.Intake.FAQ = viper.GetStringMapString("intake.faq")

	// Triage & Dispatch
	cfg.Triage.Temperature = viper.GetFloat64("triage.temperature")
	cfg.Triage.MaxTokens = viper.GetInt("triage.max_tokens")
	cfg.Dispatch.Selector = viper.GetString("dispatch.selector")

	// Notification
	cfg.Notification.RecipientEmail = viper.GetString("notification.recipient_email")
	cfg.Notification.SenderEmail = viper.GetString("notification.sender_email")
	cfg.Notification.StaffChatID = viper.GetInt64("notification.staff_chat_id")
	cfg.Notification.SES.Enabled = viper.GetBool("notification.ses.enabled")
	cfg.Notification.SES.Region = viper.GetString("notification.ses.region")
	cfg.Notification.SNS.Enabled = viper.GetBool("notification.sns.enabled")
	cfg.Notification.SNS.Region = viper.GetString("notification.sns.region")
	cfg.Notification.SNS.PhoneNumber = viper.GetString("notification.sns.phone_number")
	cfg.Notification.Gmail.Enabled = viper.GetBool("notification.gmail.enabled")
	cfg.Notification.Gmail.CredentialsPath = viper.GetString("notification.gmail.credentials_path")
	cfg.Notification.Gmail.TokenPath = viper.GetString("notification.gmail.token_path")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPIBase = viper.GetString("telegram.ngrok_api_base")
	cfg.Telegram.TenantID = viper.GetString("telegram.tenant_id")
	cfg.Telegram.RequestsPerMin = viper.GetInt("telegram.requests_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.max_keys", 1000)

	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "maintenance")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_open_conns", 20)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "5m")

	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)

	viper.SetDefault("queue.enabled", true)
	viper.SetDefault("queue.redis_db", 1)
	viper.SetDefault("queue.concurrency", 5)
	viper.SetDefault("queue.max_retry", 10)

	// LLM defaults: one retry per request, bounded per attempt and overall
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.max_attempts", 2)
	viper.SetDefault("llm.retry_delay", "500ms")
	viper.SetDefault("llm.attempt_timeout", "10s")
	viper.SetDefault("llm.max_total_timeout", "25s")

	viper.SetDefault("intake.session_store", "redis")
	viper.SetDefault("intake.session_ttl", "2h")
	viper.SetDefault("intake.max_sessions", 10000)

	viper.SetDefault("triage.temperature", 0.1)
	viper.SetDefault("triage.max_tokens", 200)
	viper.SetDefault("dispatch.selector", "first")

	viper.SetDefault("notification.ses.region", "us-east-1")
	viper.SetDefault("notification.sns.region", "us-east-1")
	viper.SetDefault("notification.gmail.token_path", "token.json")
	viper.SetDefault("telegram.ngrok_api_base", "http://ngrok:4040")
	viper.SetDefault("telegram.tenant_id", "default")
	viper.SetDefault("telegram.requests_per_min", 30)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}
	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("retry_attempts must be at least 1")
	}
	if cfg.MaxAttempts < 0 {
		return fmt.Errorf("max_attempts must not be negative")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
