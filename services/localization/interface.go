// Package localization translates English prompt strings into a target language.
package localization

import "context"

// Translator returns text translated into language, or text itself when no
// translation is known.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

// isSource reports whether language needs no translation.
func isSource(language string) bool {
	return language == "" || language == "en"
}
