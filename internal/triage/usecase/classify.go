package usecase

import (
	"context"
	"fmt"
	"strings"

	"tenant-maintenance-assistant/internal/model"
	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/llmprovider"
	"tenant-maintenance-assistant/pkg/metrics"
)

// Classify asks the generation service for a classification and falls back to
// deterministic rules when the answer breaks the output contract.
func (uc *implUseCase) Classify(ctx context.Context, input triage.ClassifyInput) (triage.ClassifyOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return triage.ClassifyOutput{}, triage.ErrEmptyDescription
	}

	issueLine := "\n"
	if it := strings.TrimSpace(input.IssueType); it != "" {
		issueLine = fmt.Sprintf(PromptIssueTypeLine, it)
	}
	prompt := fmt.Sprintf(PromptClassify, input.TenantUrgency, issueLine, description)

	req := llmprovider.UserPrompt(PromptClassifySystem, prompt, uc.temperature, uc.maxTokens)
	req.JSONMode = true

	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "%s: generation failed: %v", LogPrefixClassify, err)
		out := uc.fallback(input.TenantUrgency, ReasonGenerationFailed)
		return out, triage.ErrGenerationUnavailable
	}

	c, reason := uc.decode(resp.Text)
	if reason != "" {
		uc.l.Warnf(ctx, "%s: %s, falling back: %q", LogPrefixClassify, reason, resp.Text)
		return uc.fallback(input.TenantUrgency, reason), nil
	}

	metrics.TriageClassifications.WithLabelValues(string(c.Specialty), string(c.Priority), string(triage.SourceModel)).Inc()
	uc.l.Infof(ctx, "%s: classified as %s/%s by %s", LogPrefixClassify, c.Specialty, c.Priority, resp.ProviderName)
	return triage.ClassifyOutput{Classification: c, Source: triage.SourceModel}, nil
}

func (uc *implUseCase) fallback(tenantUrgency, reason string) triage.ClassifyOutput {
	c := FallbackClassification(tenantUrgency)
	metrics.TriageClassifications.WithLabelValues(string(c.Specialty), string(c.Priority), string(triage.SourceFallback)).Inc()
	return triage.ClassifyOutput{
		Classification: c,
		Source:         triage.SourceFallback,
		FallbackReason: reason,
	}
}

// FallbackClassification is the deterministic classification used when the model
// cannot be trusted: General work, priority taken from the tenant's hint.
func FallbackClassification(tenantUrgency string) model.Classification {
	hint := strings.ToLower(strings.TrimSpace(tenantUrgency))

	priority := model.PriorityMedium
	switch hint {
	case model.UrgencyHigh, "urgent":
		priority = model.PriorityHigh
	case model.UrgencyLow:
		priority = model.PriorityLow
	}
	return model.Classification{Specialty: model.SpecialtyGeneral, Priority: priority}
}
