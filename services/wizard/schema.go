package wizard

import "voiceform/models"

// CompletionMessage is announced once the last field has been answered.
const CompletionMessage = "Form completed successfully! You can now download your PDF."

// DefaultFields is the built-in form asked by /api/start.
var DefaultFields = []models.FieldSpec{
	{ID: "fullName", Question: "What is your full name?", Type: models.FieldText},
	{ID: "email", Question: "What is your email address?", Type: models.FieldEmail},
	{ID: "phone", Question: "What is your phone number?", Type: models.FieldTel},
	{ID: "address", Question: "What is your residential address?", Type: models.FieldText},
	{ID: "dateOfBirth", Question: "What is your date of birth?", Type: models.FieldDate},
	{ID: "occupation", Question: "What is your occupation?", Type: models.FieldText},
}

func defaultFields() []models.FieldSpec {
	out := make([]models.FieldSpec, len(DefaultFields))
	copy(out, DefaultFields)
	return out
}
