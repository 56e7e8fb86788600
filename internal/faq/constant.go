package faq

// Canned answers.
const (
	AnswerPayRent            = "Rent can be paid online at [property manager URL] or dropped off at the leasing office during business hours."
	AnswerPetPolicy          = "We allow pets with approval. Please check your lease or contact us for any breed restrictions or fees."
	AnswerEmergency          = "Emergencies include no heat, major leaks, flooding, broken locks, and fire hazards. For emergencies, please call [emergency phone number] immediately."
	AnswerOfficeHours        = "Our office hours are Monday through Friday, 9am to 5pm."
	AnswerMaintenanceRequest = "You can submit requests right here or through your tenant portal at [property manager portal URL]."
)

// defaultEntries is checked in order; the first match wins.
var defaultEntries = []Entry{
	{Topic: "pay rent", AllOf: []string{"pay", "rent"}, Answer: AnswerPayRent},
	{Topic: "pet policy", AnyOf: []string{"pet"}, Answer: AnswerPetPolicy},
	{Topic: "emergency maintenance", AnyOf: []string{"emergency", "urgent"}, Answer: AnswerEmergency},
	{Topic: "office hours", AllOf: []string{"office", "hours"}, Answer: AnswerOfficeHours},
	{Topic: "maintenance request", AllOf: []string{"maintenance", "request"}, Answer: AnswerMaintenanceRequest},
}
