package intake

import (
	"encoding/json"
	"fmt"

	"tenant-maintenance-assistant/internal/model"
)

// Kind names a conversation state.
type Kind string

const (
	KindWelcome         Kind = "welcome"
	KindFAQ             Kind = "faq"
	KindMaintenance     Kind = "maintenance"
	KindEndConversation Kind = "end_conversation"
	KindCompleted       Kind = "completed"
)

// Step is a maintenance sub-state, in the order they are asked.
type Step string

const (
	StepName        Step = "name"
	StepUnit        Step = "unit"
	StepContact     Step = "contact"
	StepIssueType   Step = "issue_type"
	StepDescription Step = "description"
	StepUrgency     Step = "urgency"
)

// State is the sealed set of conversation states. Only the types below implement it.
type State interface {
	Kind() Kind
	sealed()
}

type Welcome struct{}
type FAQ struct{}
type EndConversation struct{}
type Completed struct{}

// Maintenance carries the current step and the request being collected.
type Maintenance struct {
	Step  Step
	Draft model.MaintenanceRequest
}

func (Welcome) Kind() Kind         { return KindWelcome }
func (FAQ) Kind() Kind             { return KindFAQ }
func (Maintenance) Kind() Kind     { return KindMaintenance }
func (EndConversation) Kind() Kind { return KindEndConversation }
func (Completed) Kind() Kind       { return KindCompleted }

func (Welcome) sealed()         {}
func (FAQ) sealed()             {}
func (Maintenance) sealed()     {}
func (EndConversation) sealed() {}
func (Completed) sealed()       {}

// StepOf returns the maintenance step of s, or "" for other states.
func StepOf(s State) Step {
	if m, ok := s.(Maintenance); ok {
		return m.Step
	}
	return ""
}

// Record is what the session store keeps per conversation.
type Record struct {
	State   State
	Session model.Session
}

type recordJSON struct {
	Kind    Kind                      `json:"kind"`
	Step    Step                      `json:"step,omitempty"`
	Draft   *model.MaintenanceRequest `json:"draft,omitempty"`
	Session model.Session             `json:"session"`
}

// MarshalJSON encodes the state as a kind-tagged envelope.
func (r Record) MarshalJSON() ([]byte, error) {
	st := r.State
	if st == nil {
		st = Welcome{}
	}
	env := recordJSON{Kind: st.Kind(), Session: r.Session}
	if m, ok := st.(Maintenance); ok {
		draft := m.Draft
		env.Step = m.Step
		env.Draft = &draft
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes the envelope written by MarshalJSON.
func (r *Record) UnmarshalJSON(b []byte) error {
	var env recordJSON
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	switch env.Kind {
	case KindWelcome:
		r.State = Welcome{}
	case KindFAQ:
		r.State = FAQ{}
	case KindEndConversation:
		r.State = EndConversation{}
	case KindCompleted:
		r.State = Completed{}
	case KindMaintenance:
		m := Maintenance{Step: env.Step}
		if env.Draft != nil {
			m.Draft = *env.Draft
		}
		if !m.Step.valid() {
			return fmt.Errorf("%w: step %q", ErrCorruptState, env.Step)
		}
		r.State = m
	default:
		return fmt.Errorf("%w: kind %q", ErrCorruptState, env.Kind)
	}
	r.Session = env.Session
	return nil
}

func (s Step) valid() bool {
	switch s {
	case StepName, StepUnit, StepContact, StepIssueType, StepDescription, StepUrgency:
		return true
	}
	return false
}
