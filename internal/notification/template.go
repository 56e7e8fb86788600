package notification

import (
	"fmt"
	"strings"
)

const (
	labelUrgent    = "URGENT"
	labelNonUrgent = "NON-URGENT"

	submittedLayout = "January 2, 2006 at 3:04 PM MST"
)

func (n Notice) label() string {
	if n.Urgent() {
		return labelUrgent
	}
	return labelNonUrgent
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not provided"
	}
	return s
}

// Subject renders the email subject line.
func (n Notice) Subject() string {
	return fmt.Sprintf("[%s] Maintenance Request from %s", n.label(), orUnknown(n.TenantName))
}

// Body renders the plain-text email body.
func (n Notice) Body() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tenant Name: %s\n", orUnknown(n.TenantName))
	fmt.Fprintf(&b, "Unit/Property: %s\n", orUnknown(n.UnitNumber))
	fmt.Fprintf(&b, "Contact Information: %s\n", orUnknown(n.ContactInfo))
	fmt.Fprintf(&b, "Priority: %s\n", n.label())
	fmt.Fprintf(&b, "Classification: %s work, %s priority\n", n.Classification.Specialty, n.Classification.Priority)
	if n.Vendor != nil {
		fmt.Fprintf(&b, "Assigned Vendor: %s (%s)\n", n.Vendor.Name, n.Vendor.ContactEmail)
	}
	b.WriteString("\nIssue Description:\n")
	if n.IssueType != "" {
		fmt.Fprintf(&b, "%s\n", n.IssueType)
	}
	fmt.Fprintf(&b, "%s\n", orUnknown(n.Description))
	if n.RequestID != "" {
		fmt.Fprintf(&b, "\nRequest ID: %s\n", n.RequestID)
	}
	fmt.Fprintf(&b, "\nSubmitted via Property Assistant on %s", n.SubmittedAt.Format(submittedLayout))
	return b.String()
}

// Short renders a one-paragraph summary for SMS and chat.
func (n Notice) Short() string {
	s := fmt.Sprintf("[%s] %s %s request from %s (unit %s): %s",
		n.label(), n.Classification.Priority, n.Classification.Specialty,
		orUnknown(n.TenantName), orUnknown(n.UnitNumber), orUnknown(n.Description))
	if n.Vendor != nil {
		s += fmt.Sprintf(" Dispatched to %s.", n.Vendor.Name)
	}
	return s
}
