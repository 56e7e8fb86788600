package usecase

// Prompts shown to tenants.
const (
	MsgGreeting = "Hello! I'm here to help with your property management needs. How can I assist you today?"

	MsgMaintenanceIntro = "I'll help you report that maintenance issue."
	MsgWelcomeBack      = "Welcome back, %s."
	MsgThankYou         = "Thank you."

	PromptName        = "What's your full name?"
	PromptNameFirst   = "First, what's your full name?"
	PromptUnit        = "What's your unit number or property address?"
	PromptContact     = "What's the best phone number or email to reach you?"
	PromptIssueType   = "What kind of issue are you experiencing?"
	PromptDescription = "Please describe what's happening and where the problem is located."
	PromptMoreDetail  = "Got it. Can you tell me a bit more about what's happening and where the problem is located?"
	PromptUrgency     = "Is this an emergency that needs immediate attention, like active flooding, no heat in freezing weather or a safety hazard?"

	MsgFAQEntry     = "What question can I help you with?"
	MsgFAQForwarded = "Thanks for your question! We'll forward this to the property manager and they will follow up with you shortly."

	AckUrgent  = "Thank you. We've flagged this as urgent and will escalate it right away."
	AckRoutine = "Thanks for letting us know. We'll review and follow up during normal business hours."
	AckFailure = "Thanks, we've received your request and will follow up shortly."
	AckVendor  = "%s has been assigned to your %s issue and will be in touch."

	MsgAnythingElse = "Is there anything else I can help you with today?"
	MsgGoodbye      = "Thank you for contacting us. Have a great day!"
)

// Option labels.
const (
	OptionQuestion    = "I have a question"
	OptionMaintenance = "I need to report a maintenance issue"

	OptionUrgent  = "Yes, it's urgent"
	OptionRoutine = "No, it's routine"

	OptionAnotherQuestion = "Yes, I have another question"
	OptionAnotherIssue    = "Yes, report another issue"
	OptionDone            = "No, that's all"
)

// Issue categories offered at the issue_type step.
const (
	CategoryPlumbing   = "Leak or plumbing problem"
	CategoryHeatCool   = "No heat or AC not working"
	CategoryElectrical = "Electrical or power issue"
	CategoryAppliance  = "Appliance not working"
	CategoryAccess     = "Lock, door or window problem"
	CategoryOther      = "Other"
)

var (
	welcomeOptions  = []string{OptionQuestion, OptionMaintenance}
	urgencyOptions  = []string{OptionUrgent, OptionRoutine}
	anythingOptions = []string{OptionAnotherQuestion, OptionAnotherIssue, OptionDone}
	categoryOptions = []string{CategoryPlumbing, CategoryHeatCool, CategoryElectrical, CategoryAppliance, CategoryAccess, CategoryOther}
)

// categoryQuestions is asked right after a category is picked. CategoryOther has no entry.
var categoryQuestions = map[string]string{
	CategoryPlumbing:   "Where is the water coming from, and is it actively leaking right now?",
	CategoryHeatCool:   "Is the system completely off, or is it running but not heating or cooling properly?",
	CategoryElectrical: "Is the problem affecting the whole unit or a single outlet, switch or light? Do you see sparks or smell burning?",
	CategoryAppliance:  "Which appliance is it, and what happens when you try to use it?",
	CategoryAccess:     "Which door, lock or window is affected, and can your unit still be secured?",
}

// Keywords recognised in free-text replies.
var (
	questionWords    = []string{"question"}
	maintenanceWords = []string{"maintenance", "issue", "repair", "report"}
	noDetailReplies  = []string{"no", "none", "nothing", "n/a", "na", "skip", "nope"}
)
