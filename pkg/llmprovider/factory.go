package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tenant-maintenance-assistant/config"
	"tenant-maintenance-assistant/pkg/gemini"
	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/openai"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Providers are sorted by ascending priority; disabled ones are dropped and
// ones that fail to initialize are skipped with a warning.
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}
	return providers, nil
}

// NewConfig converts config.LLMConfig into Manager settings.
func NewConfig(cfg config.LLMConfig) (*Config, error) {
	out := &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		MaxAttempts:     cfg.MaxAttempts,
	}

	var err error
	if out.RetryDelay, err = parseDuration(cfg.RetryDelay); err != nil {
		return nil, fmt.Errorf("retry_delay: %w", err)
	}
	if out.AttemptTimeout, err = parseDuration(cfg.AttemptTimeout); err != nil {
		return nil, fmt.Errorf("attempt_timeout: %w", err)
	}
	if out.MaxTotalTimeout, err = parseDuration(cfg.MaxTotalTimeout); err != nil {
		return nil, fmt.Errorf("max_total_timeout: %w", err)
	}
	return out, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	timeout, err := parseDuration(cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("provider %s: invalid timeout: %w", cfg.Name, err)
	}

	switch cfg.Name {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			APIURL:  cfg.BaseURL,
			Timeout: timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case "openai", "qwen", "alibaba", "deepseek":
		oc := openai.Config{APIKey: cfg.APIKey, Model: cfg.Model}
		switch cfg.Name {
		case "qwen", "alibaba":
			oc = openai.QwenConfig(cfg.APIKey, cfg.Model)
		case "deepseek":
			oc = openai.DeepSeekConfig(cfg.APIKey, cfg.Model)
		}
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		oc.Timeout = timeout

		client, err := openai.New(oc)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewOpenAIAdapter(cfg.Name, client), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
