package llmprovider

import (
	"context"
	"fmt"
	"time"

	"tenant-maintenance-assistant/pkg/log"
	"tenant-maintenance-assistant/pkg/metrics"
)

// Manager orchestrates provider selection, fallback, and retry logic
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
}

// Config defines configuration for the Provider Manager
type Config struct {
	FallbackEnabled bool

	// RetryAttempts is the total number of attempts per provider, first try included.
	RetryAttempts int

	// MaxAttempts caps attempts across all providers for one request. Zero means
	// RetryAttempts per provider with no overall cap.
	MaxAttempts     int
	RetryDelay      time.Duration
	AttemptTimeout  time.Duration
	MaxTotalTimeout time.Duration
}

// NewManager creates a new Provider Manager with the given providers, config, and logger
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config.RetryAttempts < 1 {
		config.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
	}
}

// GenerateContent iterates through providers in priority order with fallback logic
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	budget := m.config.MaxAttempts
	if budget <= 0 {
		budget = m.config.RetryAttempts * len(m.providers)
	}

	var lastErr error
	for _, provider := range m.providers {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: global timeout exceeded: %v", ErrAllProvidersFailed, ctx.Err())
		default:
		}
		if budget <= 0 {
			break
		}

		resp, err := m.generateWithRetry(ctx, provider, req, &budget)
		if err == nil {
			m.logSuccess(ctx, provider, resp)
			return resp, nil
		}

		m.logFailure(ctx, provider, err)
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries a single provider with linear backoff. Each attempt
// spends one unit of the request's budget.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request, budget *int) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts && *budget > 0; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		*budget--
		resp, err := m.attempt(ctx, provider, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		m.logger.Warnf(ctx, "llmprovider.Manager.generateWithRetry: provider=%s attempt=%d err=%v", provider.Name(), attempt+1, err)
	}

	return nil, lastErr
}

func (m *Manager) attempt(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	if m.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.AttemptTimeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	metrics.LLMRequestDuration.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(provider.Name(), metrics.OutcomeFailure).Inc()
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: %v", ErrProviderTimeout, err)
		}
		return nil, err
	}
	if resp == nil || resp.Text == "" {
		metrics.LLMRequestsTotal.WithLabelValues(provider.Name(), metrics.OutcomeFailure).Inc()
		return nil, ErrEmptyResponse
	}
	metrics.LLMRequestsTotal.WithLabelValues(provider.Name(), metrics.OutcomeSuccess).Inc()
	return resp, nil
}

func (m *Manager) logSuccess(ctx context.Context, provider Provider, resp *Response) {
	var in, out int
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "LLM generation successful: provider=%s model=%s input_tokens=%d output_tokens=%d",
		provider.Name(), provider.Model(), in, out)
}

func (m *Manager) logFailure(ctx context.Context, provider Provider, err error) {
	m.logger.Warnf(ctx, "LLM generation failed: provider=%s model=%s err=%v",
		provider.Name(), provider.Model(), err)
}
