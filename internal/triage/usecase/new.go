package usecase

import (
	"context"

	"github.com/xeipuuv/gojsonschema"

	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/llmprovider"
	pkgLog "tenant-maintenance-assistant/pkg/log"
)

// Generator is the text-generation dependency, satisfied by *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implUseCase struct {
	l           pkgLog.Logger
	llm         Generator
	schema      *gojsonschema.Schema
	temperature float64
	maxTokens   int
}

var _ triage.UseCase = (*implUseCase)(nil)

// Config tunes the classifier call.
type Config struct {
	Temperature float64
	MaxTokens   int
}

// New creates a new triage UseCase instance.
func New(l pkgLog.Logger, llm Generator, cfg Config) (*implUseCase, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(classificationSchema))
	if err != nil {
		return nil, err
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultClassifyTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultClassifyMaxTokens
	}
	return &implUseCase{
		l:           l,
		llm:         llm,
		schema:      schema,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}, nil
}
