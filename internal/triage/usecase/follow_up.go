package usecase

import (
	"context"
	"fmt"
	"strings"

	"tenant-maintenance-assistant/internal/triage"
	"tenant-maintenance-assistant/pkg/llmprovider"
)

// FollowUp generates one clarifying question for a free-text issue.
func (uc *implUseCase) FollowUp(ctx context.Context, input triage.FollowUpInput) (triage.FollowUpOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return triage.FollowUpOutput{}, triage.ErrEmptyDescription
	}

	msgs := make([]llmprovider.Message, 0, len(input.History)+1)
	for _, t := range input.History {
		if t.Content == "" {
			continue
		}
		role := llmprovider.RoleUser
		if t.Role == llmprovider.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		msgs = append(msgs, llmprovider.Message{Role: role, Text: t.Content})
	}
	msgs = append(msgs, llmprovider.Message{Role: llmprovider.RoleUser, Text: fmt.Sprintf(PromptFollowUp, description)})

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: PromptFollowUpSystem,
		Messages:          msgs,
		Temperature:       FollowUpTemperature,
		MaxTokens:         FollowUpMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: generation failed, using static question: %v", LogPrefixFollowUp, err)
		return triage.FollowUpOutput{Question: FallbackFollowUpQuestion}, nil
	}

	q := strings.TrimSpace(resp.Text)
	if q == "" {
		return triage.FollowUpOutput{Question: FallbackFollowUpQuestion}, nil
	}
	return triage.FollowUpOutput{Question: q, Generated: true}, nil
}
