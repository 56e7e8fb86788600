package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tenant-maintenance-assistant/internal/model"
)

func TestNoticeTemplate(t *testing.T) {
	at := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	t.Run("urgent with vendor", func(t *testing.T) {
		n := Notice{
			RequestID:      "req-1",
			TenantName:     "Jane Doe",
			UnitNumber:     "4B",
			ContactInfo:    "555-0100",
			IssueType:      "Leak or plumbing problem",
			Description:    "Water pouring from ceiling",
			Classification: model.Classification{Specialty: model.SpecialtyPlumbing, Priority: model.PriorityUrgent},
			Vendor:         &model.Vendor{Name: "Ace Plumbing", ContactEmail: "ace@example.com"},
			SubmittedAt:    at,
		}

		assert.Equal(t, "[URGENT] Maintenance Request from Jane Doe", n.Subject())
		body := n.Body()
		assert.Contains(t, body, "Tenant Name: Jane Doe\n")
		assert.Contains(t, body, "Priority: URGENT\n")
		assert.Contains(t, body, "Assigned Vendor: Ace Plumbing (ace@example.com)")
		assert.Contains(t, body, "Issue Description:\nLeak or plumbing problem\nWater pouring from ceiling\n")
		assert.True(t, strings.HasSuffix(body, "Submitted via Property Assistant on March 4, 2026 at 3:30 PM UTC"))
		assert.Contains(t, n.Short(), "Dispatched to Ace Plumbing.")
	})

	t.Run("routine without identity", func(t *testing.T) {
		n := Notice{
			Description:    "Dripping tap",
			Classification: model.Classification{Specialty: model.SpecialtyGeneral, Priority: model.PriorityLow},
			SubmittedAt:    at,
		}

		assert.Equal(t, "[NON-URGENT] Maintenance Request from Not provided", n.Subject())
		assert.Contains(t, n.Body(), "Unit/Property: Not provided")
		assert.NotContains(t, n.Body(), "Assigned Vendor")
		assert.False(t, n.Urgent())
	})
}
