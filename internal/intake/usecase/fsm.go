package usecase

import (
	"fmt"
	"strings"

	"tenant-maintenance-assistant/internal/faq"
	"tenant-maintenance-assistant/internal/intake"
	"tenant-maintenance-assistant/internal/model"
)

// transition is the result of one FSM step. It has no side effects; a non-nil
// submission is executed by the caller.
type transition struct {
	next       intake.State
	session    model.Session
	message    string
	options    []string
	submission *model.MaintenanceRequest
}

// engine is the pure conversation state machine.
type engine struct {
	faq faq.Router
}

// advance applies one non-empty tenant message to the current state.
func (e engine) advance(st intake.State, sess model.Session, text string) transition {
	lower := strings.ToLower(text)

	switch s := st.(type) {
	case intake.FAQ:
		return e.answer(sess, text)
	case intake.Maintenance:
		return e.maintenance(s, sess, text, lower)
	case intake.EndConversation:
		if !strings.Contains(lower, "yes") {
			return transition{next: intake.Completed{}, session: sess, message: MsgGoodbye}
		}
		switch {
		case containsAny(lower, questionWords):
			return transition{next: intake.FAQ{}, session: sess, message: MsgFAQEntry}
		case containsAny(lower, maintenanceWords):
			return e.startMaintenance(sess)
		}
		return greeting(sess)
	case intake.Completed:
		return greeting(sess)
	default:
		// Welcome and anything unknown.
		switch {
		case containsAny(lower, questionWords):
			return transition{next: intake.FAQ{}, session: sess, message: MsgFAQEntry}
		case containsAny(lower, maintenanceWords):
			return e.startMaintenance(sess)
		}
		return e.answer(sess, text)
	}
}

// prompt repeats what the tenant is currently being asked.
func (e engine) prompt(st intake.State) (string, []string) {
	switch s := st.(type) {
	case intake.FAQ:
		return MsgFAQEntry, nil
	case intake.Maintenance:
		return stepPrompt(s.Step, s.Draft)
	case intake.EndConversation:
		return MsgAnythingElse, anythingOptions
	default:
		return MsgGreeting, welcomeOptions
	}
}

func greeting(sess model.Session) transition {
	return transition{next: intake.Welcome{}, session: sess, message: MsgGreeting, options: welcomeOptions}
}

func (e engine) answer(sess model.Session, text string) transition {
	msg := MsgFAQForwarded
	if m, ok := e.faq.Lookup(text); ok {
		msg = m.Answer
	}
	return transition{
		next:    intake.EndConversation{},
		session: sess,
		message: joinParagraphs(msg, MsgAnythingElse),
		options: anythingOptions,
	}
}

// startMaintenance opens a fresh draft, skipping identity steps the session already knows.
func (e engine) startMaintenance(sess model.Session) transition {
	draft := model.MaintenanceRequest{
		TenantName:  sess.TenantName,
		UnitNumber:  sess.UnitNumber,
		ContactInfo: sess.ContactInfo,
	}
	step := nextIdentityStep(sess)

	var msg string
	switch {
	case step == intake.StepName:
		msg = MsgMaintenanceIntro + " " + PromptNameFirst
	case sess.TenantName != "":
		p, _ := stepPrompt(step, draft)
		msg = MsgMaintenanceIntro + " " + fmt.Sprintf(MsgWelcomeBack, sess.TenantName) + " " + p
	default:
		p, _ := stepPrompt(step, draft)
		msg = MsgMaintenanceIntro + " " + p
	}

	_, opts := stepPrompt(step, draft)
	return transition{
		next:    intake.Maintenance{Step: step, Draft: draft},
		session: sess,
		message: msg,
		options: opts,
	}
}

func (e engine) maintenance(s intake.Maintenance, sess model.Session, text, lower string) transition {
	draft := s.Draft

	switch s.Step {
	case intake.StepName:
		draft.TenantName = text
		sess.TenantName = text
		return identityNext(draft, sess)
	case intake.StepUnit:
		draft.UnitNumber = text
		sess.UnitNumber = text
		return identityNext(draft, sess)
	case intake.StepContact:
		draft.ContactInfo = text
		sess.ContactInfo = text
		return identityNext(draft, sess)

	case intake.StepIssueType:
		category, matched := matchCategory(lower)
		draft.IssueType = category
		msg := PromptDescription
		switch {
		case !matched:
			draft.Description = text
			msg = PromptMoreDetail
		case categoryQuestions[category] != "":
			msg = categoryQuestions[category]
		}
		return transition{
			next:    intake.Maintenance{Step: intake.StepDescription, Draft: draft},
			session: sess,
			message: msg,
		}

	case intake.StepDescription:
		draft.Description = mergeDescription(draft.Description, text, lower)
		return transition{
			next:    intake.Maintenance{Step: intake.StepUrgency, Draft: draft},
			session: sess,
			message: PromptUrgency,
			options: urgencyOptions,
		}

	case intake.StepUrgency:
		draft.SelfReportedUrgency = parseUrgency(lower)
		req := draft
		return transition{
			next:       intake.EndConversation{},
			session:    sess,
			message:    MsgAnythingElse,
			options:    anythingOptions,
			submission: &req,
		}
	}

	// Unknown step: restart the flow.
	return e.startMaintenance(sess)
}

// identityNext moves past a completed identity step.
func identityNext(draft model.MaintenanceRequest, sess model.Session) transition {
	step := nextIdentityStep(sess)
	p, opts := stepPrompt(step, draft)
	return transition{
		next:    intake.Maintenance{Step: step, Draft: draft},
		session: sess,
		message: MsgThankYou + " " + p,
		options: opts,
	}
}

func nextIdentityStep(sess model.Session) intake.Step {
	if sess.HasIdentity() {
		return intake.StepIssueType
	}
	switch {
	case sess.TenantName == "":
		return intake.StepName
	case sess.UnitNumber == "":
		return intake.StepUnit
	default:
		return intake.StepContact
	}
}

func stepPrompt(step intake.Step, draft model.MaintenanceRequest) (string, []string) {
	switch step {
	case intake.StepName:
		return PromptName, nil
	case intake.StepUnit:
		return PromptUnit, nil
	case intake.StepContact:
		return PromptContact, nil
	case intake.StepIssueType:
		return PromptIssueType, categoryOptions
	case intake.StepDescription:
		if q := categoryQuestions[draft.IssueType]; q != "" {
			return q, nil
		}
		return PromptDescription, nil
	case intake.StepUrgency:
		return PromptUrgency, urgencyOptions
	}
	return MsgGreeting, welcomeOptions
}

// matchCategory compares case-insensitively against the option labels. Free text
// maps to CategoryOther with matched == false.
func matchCategory(lower string) (string, bool) {
	for _, c := range categoryOptions {
		if lower == strings.ToLower(c) {
			return c, true
		}
	}
	return CategoryOther, false
}

func mergeDescription(seed, text, lower string) string {
	noDetail := false
	for _, r := range noDetailReplies {
		if strings.Trim(lower, ".! ") == r {
			noDetail = true
			break
		}
	}

	switch {
	case noDetail && seed != "":
		return seed
	case noDetail:
		return model.NoFurtherDetail
	case seed != "":
		return seed + "\n" + text
	default:
		return text
	}
}

func parseUrgency(lower string) bool {
	if strings.Contains(lower, "not urgent") {
		return false
	}
	return strings.Contains(lower, "urgent") || strings.Contains(lower, "yes")
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func joinParagraphs(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}
