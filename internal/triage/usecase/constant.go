package usecase

// Log prefixes
const (
	LogPrefixClassify = "internal.triage.usecase.Classify"
	LogPrefixFollowUp = "internal.triage.usecase.FollowUp"
)

// Classification prompts
const (
	PromptClassifySystem = "You are a helpful assistant that returns only valid JSON responses."

	PromptClassify = `You are a maintenance triage specialist. Based on the following maintenance request description, return a JSON object with exactly two fields:

1. "specialty": The category of work needed. Choose EXACTLY one from: "Plumbing", "Electrical", "HVAC", "General"
2. "priority": The verified priority level. Choose EXACTLY one from: "Low", "Medium", "High", "Urgent"

Consider both the description content and the tenant's self-assessed urgency: "%s"
%s
Description: "%s"

Return ONLY valid JSON with no additional text or formatting.`

	PromptIssueTypeLine = "\nReported issue type: \"%s\"\n"
)

// Follow-up prompts
const (
	PromptFollowUpSystem = `You are a maintenance assistant for a property management company. Your job is to ask ONE specific, relevant follow-up question to better understand the maintenance issue.

Guidelines:
- Ask only ONE clarifying question
- Be specific and helpful
- Focus on understanding urgency, location, or technical details
- Keep responses under 50 words
- Be empathetic and professional

Examples:
- For "broken faucet": "Is the faucet completely not working, or is it dripping/leaking? This helps us determine if it's an emergency repair."
- For "heating issue": "Is there no heat at all, or is it not heating to the right temperature? Also, which rooms are affected?"
- For "electrical problem": "Are any outlets not working, or are lights flickering? Is this affecting multiple rooms or just one area?"`

	PromptFollowUp = "Initial maintenance issue description: %s. Please ask ONE specific follow-up question to better understand this issue."

	FallbackFollowUpQuestion = "Could you tell us where exactly the problem is and when it started? This helps us decide how quickly to send someone."
)

// Generation settings
const (
	DefaultClassifyTemperature = 0.1
	DefaultClassifyMaxTokens   = 200
	FollowUpTemperature        = 0.7
	FollowUpMaxTokens          = 100
)

// Fallback reasons
const (
	ReasonGenerationFailed = "generation service unavailable"
	ReasonSchemaViolation  = "response violated output contract"
	ReasonInvalidJSON      = "response was not valid JSON"
)

// classificationSchema is the strict output contract for the classifier.
const classificationSchema = `{
	"type": "object",
	"required": ["specialty", "priority"],
	"additionalProperties": false,
	"properties": {
		"specialty": {"type": "string", "enum": ["Plumbing", "Electrical", "HVAC", "General"]},
		"priority": {"type": "string", "enum": ["Low", "Medium", "High", "Urgent"]}
	}
}`
