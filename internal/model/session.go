package model

// Session holds the tenant identity reused across maintenance flows of one conversation.
type Session struct {
	TenantName  string `json:"tenant_name,omitempty"`
	UnitNumber  string `json:"unit_number,omitempty"`
	ContactInfo string `json:"contact_info,omitempty"`
}

// HasIdentity reports whether every identity field is already known.
func (s Session) HasIdentity() bool {
	return s.TenantName != "" && s.UnitNumber != "" && s.ContactInfo != ""
}
