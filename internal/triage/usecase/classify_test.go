package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/internal/triage/usecase"
	"tenant-maintenance-assistant/pkg/llmprovider"
	"tenant-maintenance-assistant/pkg/log"
)

type fakeGenerator struct {
	text string
	err  error
	last *llmprovider.Request
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.text, ProviderName: "fake"}, nil
}

func newUseCase(t *testing.T, gen usecase.Generator) triage.UseCase {
	t.Helper()
	uc, err := usecase.New(log.NewNop(), gen, usecase.Config{})
	require.NoError(t, err)
	return uc
}

func TestClassify_ModelOutput(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Classification
	}{
		{
			name: "plain json",
			text: `{"specialty":"Plumbing","priority":"Urgent"}`,
			want: model.Classification{Specialty: model.SpecialtyPlumbing, Priority: model.PriorityUrgent},
		},
		{
			name: "fenced json",
			text: "```json\n{\"specialty\": \"HVAC\", \"priority\": \"High\"}\n```",
			want: model.Classification{Specialty: model.SpecialtyHVAC, Priority: model.PriorityHigh},
		},
		{
			name: "bare fence",
			text: "```\n{\"specialty\": \"Electrical\", \"priority\": \"Low\"}\n```",
			want: model.Classification{Specialty: model.SpecialtyElectrical, Priority: model.PriorityLow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{text: tt.text}
			out, err := newUseCase(t, gen).Classify(context.Background(), triage.ClassifyInput{
				Description:   "Water pouring from the ceiling",
				IssueType:     "Leak or plumbing problem",
				TenantUrgency: "high",
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Classification)
			assert.Equal(t, triage.SourceModel, out.Source)
			assert.Empty(t, out.FallbackReason)
		})
	}
}

func TestClassify_PromptAndSettings(t *testing.T) {
	gen := &fakeGenerator{text: `{"specialty":"General","priority":"Low"}`}
	_, err := newUseCase(t, gen).Classify(context.Background(), triage.ClassifyInput{
		Description:   "Squeaky door",
		IssueType:     "Lock, door or window problem",
		TenantUrgency: "low",
	})
	require.NoError(t, err)

	require.NotNil(t, gen.last)
	assert.Equal(t, usecase.PromptClassifySystem, gen.last.SystemInstruction)
	assert.Equal(t, 0.1, gen.last.Temperature)
	assert.True(t, gen.last.JSONMode)
	prompt := gen.last.Messages[0].Text
	assert.Contains(t, prompt, `Description: "Squeaky door"`)
	assert.Contains(t, prompt, `self-assessed urgency: "low"`)
	assert.Contains(t, prompt, `Reported issue type: "Lock, door or window problem"`)
}

func TestClassify_ContractViolationsFallBack(t *testing.T) {
	bad := []string{
		`not json at all`,
		`{"specialty":"Roofing","priority":"High"}`,
		`{"specialty":"Plumbing","priority":"urgent"}`,
		`{"specialty":"Plumbing"}`,
		`{"specialty":"Plumbing","priority":"High","reason":"extra"}`,
		`["Plumbing","High"]`,
		``,
	}

	for _, text := range bad {
		t.Run(text, func(t *testing.T) {
			gen := &fakeGenerator{text: text}
			out, err := newUseCase(t, gen).Classify(context.Background(), triage.ClassifyInput{
				Description:   "Something broke",
				TenantUrgency: "medium",
			})
			require.NoError(t, err)
			assert.Equal(t, triage.SourceFallback, out.Source)
			assert.NotEmpty(t, out.FallbackReason)
			assert.Equal(t, model.Classification{Specialty: model.SpecialtyGeneral, Priority: model.PriorityMedium}, out.Classification)
		})
	}
}

func TestClassify_GenerationFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	out, err := newUseCase(t, gen).Classify(context.Background(), triage.ClassifyInput{
		Description:   "Burning smell from outlet",
		TenantUrgency: "urgent",
	})

	assert.ErrorIs(t, err, triage.ErrGenerationUnavailable)
	assert.Equal(t, triage.SourceFallback, out.Source)
	assert.Equal(t, model.PriorityHigh, out.Classification.Priority)
	assert.Equal(t, model.SpecialtyGeneral, out.Classification.Specialty)
}

func TestClassify_EmptyDescription(t *testing.T) {
	gen := &fakeGenerator{text: `{"specialty":"General","priority":"Low"}`}
	_, err := newUseCase(t, gen).Classify(context.Background(), triage.ClassifyInput{Description: "   "})
	assert.ErrorIs(t, err, triage.ErrEmptyDescription)
	assert.Nil(t, gen.last)
}

func TestFallbackClassification(t *testing.T) {
	tests := map[string]model.Priority{
		"high":    model.PriorityHigh,
		"HIGH":    model.PriorityHigh,
		"urgent":  model.PriorityHigh,
		"low":     model.PriorityLow,
		" Low ":   model.PriorityLow,
		"medium":  model.PriorityMedium,
		"":        model.PriorityMedium,
		"unknown": model.PriorityMedium,
	}
	for hint, want := range tests {
		got := usecase.FallbackClassification(hint)
		assert.Equal(t, model.SpecialtyGeneral, got.Specialty, hint)
		assert.Equal(t, want, got.Priority, hint)
		// Determinism: same input, same output.
		assert.Equal(t, got, usecase.FallbackClassification(hint))
	}
}

type countingProvider struct {
	calls atomic.Int32
}

func (p *countingProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls.Add(1)
	return nil, errors.New("503 service unavailable")
}
func (p *countingProvider) Name() string  { return "flaky" }
func (p *countingProvider) Model() string { return "flaky-1" }

func TestClassify_ThroughManagerRetriesOnce(t *testing.T) {
	p := &countingProvider{}
	manager := llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
		AttemptTimeout:  time.Second,
		MaxTotalTimeout: 5 * time.Second,
	}, log.NewNop())

	out, err := newUseCase(t, manager).Classify(context.Background(), triage.ClassifyInput{
		Description:   "Fridge is warm",
		TenantUrgency: "low",
	})
	assert.ErrorIs(t, err, triage.ErrGenerationUnavailable)
	assert.Equal(t, int32(2), p.calls.Load())
	assert.Equal(t, model.PriorityLow, out.Classification.Priority)
}

func TestFollowUp(t *testing.T) {
	t.Run("generated", func(t *testing.T) {
		gen := &fakeGenerator{text: "  Is the leak constant or only when the tap runs?  "}
		out, err := newUseCase(t, gen).FollowUp(context.Background(), triage.FollowUpInput{
			Description: "kitchen sink leaking",
			History:     []triage.Turn{{Role: "assistant", Content: "Hi"}, {Role: "user", Content: "sink"}},
		})
		require.NoError(t, err)
		assert.True(t, out.Generated)
		assert.Equal(t, "Is the leak constant or only when the tap runs?", out.Question)
		assert.Equal(t, usecase.FollowUpTemperature, gen.last.Temperature)
		assert.Equal(t, usecase.FollowUpMaxTokens, gen.last.MaxTokens)
		assert.Len(t, gen.last.Messages, 3)
		assert.True(t, strings.HasPrefix(gen.last.Messages[2].Text, "Initial maintenance issue description: kitchen sink leaking."))
	})

	t.Run("static fallback", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("timeout")}
		out, err := newUseCase(t, gen).FollowUp(context.Background(), triage.FollowUpInput{Description: "heater"})
		require.NoError(t, err)
		assert.False(t, out.Generated)
		assert.Equal(t, usecase.FallbackFollowUpQuestion, out.Question)
	})

	t.Run("empty description", func(t *testing.T) {
		_, err := newUseCase(t, &fakeGenerator{}).FollowUp(context.Background(), triage.FollowUpInput{})
		assert.ErrorIs(t, err, triage.ErrEmptyDescription)
	})
}
