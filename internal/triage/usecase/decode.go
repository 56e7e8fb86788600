package usecase

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"tenant-maintenance-assistant/internal/model"
)

// decode validates text against the classification schema. A non-empty reason
// means the text must not be used.
func (uc *implUseCase) decode(text string) (model.Classification, string) {
	raw := stripCodeFence(text)

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return model.Classification{}, ReasonInvalidJSON
	}

	result, err := uc.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil || !result.Valid() {
		return model.Classification{}, ReasonSchemaViolation
	}

	var c model.Classification
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return model.Classification{}, ReasonInvalidJSON
	}
	return c, ""
}

// stripCodeFence removes an optional ```json ... ``` wrapper.
func stripCodeFence(text string) string {
	s := strings.TrimSpace(text)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
