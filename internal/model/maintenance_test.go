package model

import "testing"

func TestDispatchResultConstructors(t *testing.T) {
	r := NewDispatchResult()
	if r.Status != StatusNew || r.AssignedVendor != nil {
		t.Errorf("unexpected new result: %+v", r)
	}

	s := ScheduledWith(Vendor{Name: "Ace Plumbing", Specialty: SpecialtyPlumbing})
	if s.Status != StatusScheduled || s.AssignedVendor == nil || s.AssignedVendor.Name != "Ace Plumbing" {
		t.Errorf("unexpected scheduled result: %+v", s)
	}
}

func TestPriorityEscalated(t *testing.T) {
	want := map[Priority]bool{
		PriorityLow:    false,
		PriorityMedium: false,
		PriorityHigh:   true,
		PriorityUrgent: true,
	}
	for p, escalated := range want {
		if p.Escalated() != escalated {
			t.Errorf("%s: expected escalated=%v", p, escalated)
		}
	}
}

func TestEnumValidity(t *testing.T) {
	if !SpecialtyHVAC.Valid() || Specialty("Roofing").Valid() {
		t.Errorf("specialty validity mismatch")
	}
	if !PriorityUrgent.Valid() || Priority("urgent").Valid() {
		t.Errorf("priority validity mismatch")
	}
}

func TestReadyForTriage(t *testing.T) {
	r := MaintenanceRequest{IssueType: "Other"}
	if r.ReadyForTriage() {
		t.Errorf("request without description must not be ready")
	}
	r.Description = NoFurtherDetail
	if !r.ReadyForTriage() {
		t.Errorf("sentinel description must be accepted")
	}
}

func TestSessionHasIdentity(t *testing.T) {
	s := Session{TenantName: "Jane", UnitNumber: "4B"}
	if s.HasIdentity() {
		t.Errorf("session without contact must not count as identified")
	}
	s.ContactInfo = "555-0100"
	if !s.HasIdentity() {
		t.Errorf("complete session must count as identified")
	}
}
