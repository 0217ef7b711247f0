// Package normalizer turns a spoken-answer transcript into a canonical field value.
package normalizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"voiceform/models"
)

// DefaultEmailDomain completes spoken addresses that never named a domain.
const DefaultEmailDomain = "gmail.com"

var (
	emailPattern     = regexp.MustCompile(`(?i)[\w._%+-]+@[\w.-]+\.[a-z]{2,}`)
	emailSpokenStrip = regexp.MustCompile(`[^a-zA-Z0-9@._-]`)
	phonePattern     = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	phoneStrip       = regexp.MustCompile(`[^0-9+]`)
	nonDigit         = regexp.MustCompile(`[^0-9]`)
	datePattern      = regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`)
)

var monthNames = map[string]struct{}{
	"january": {}, "february": {}, "march": {}, "april": {}, "may": {}, "june": {},
	"july": {}, "august": {}, "september": {}, "october": {}, "november": {}, "december": {},
}

// Normalize maps raw transcript text to a best-effort canonical value for
// the declared field type. It never fails; unstructured input degrades to the
// trimmed, lower-cased text. language is accepted for parity with callers and
// does not affect the result.
func Normalize(raw string, fieldType models.FieldType, language string) string {
	text := strings.ToLower(strings.TrimSpace(raw))

	switch fieldType {
	case models.FieldEmail:
		return normalizeEmail(text)
	case models.FieldTel, models.FieldPhone:
		return normalizePhone(text)
	case models.FieldDate:
		return normalizeDate(text)
	default:
		return capitalizeFirst(text)
	}
}

// Result wraps Normalize with the transient result shape handed back to callers.
func Result(raw string, fieldType models.FieldType, language, field string) models.NormalizationResult {
	return models.NormalizationResult{
		Value:    Normalize(raw, fieldType, language),
		Original: raw,
		Field:    field,
	}
}

func normalizeEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	// "my email is john at gmail dot com" style answers.
	if hasWord(text, "email", "e-mail") {
		rebuilt := emailSpokenStrip.ReplaceAllString(text, "")
		if strings.Contains(rebuilt, "@") {
			return rebuilt
		}
		return rebuilt + "@" + DefaultEmailDomain
	}
	return text
}

func normalizePhone(text string) string {
	if m := phonePattern.FindString(text); m != "" {
		return phoneStrip.ReplaceAllString(m, "")
	}
	digits := nonDigit.ReplaceAllString(text, "")
	switch {
	case len(digits) == 10:
		return digits
	case len(digits) > 10:
		return "+" + digits
	}
	return text
}

// normalizeDate returns a numeric date token verbatim. Month-name dates
// ("january 15 1990") are left as spoken.
func normalizeDate(text string) string {
	if m := datePattern.FindString(text); m != "" {
		return m
	}
	return text
}

// Recognized reports whether raw carries a structured value for fieldType
// rather than degrading to plain text. Free-text types are always recognized.
func Recognized(raw string, fieldType models.FieldType) bool {
	text := strings.ToLower(strings.TrimSpace(raw))
	switch fieldType {
	case models.FieldEmail:
		return emailPattern.MatchString(text) || hasWord(text, "email", "e-mail")
	case models.FieldTel, models.FieldPhone:
		return phonePattern.MatchString(text) || len(nonDigit.ReplaceAllString(text, "")) >= 10
	case models.FieldDate:
		return datePattern.MatchString(text) || hasMonthName(text)
	default:
		return true
	}
}

func hasMonthName(text string) bool {
	for _, w := range strings.Fields(text) {
		if _, ok := monthNames[w]; ok {
			return true
		}
	}
	return false
}

func hasWord(text string, words ...string) bool {
	for _, w := range strings.Fields(text) {
		for _, want := range words {
			if w == want {
				return true
			}
		}
	}
	return false
}

func capitalizeFirst(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 {
		return text
	}
	return string(unicode.ToUpper(r)) + text[size:]
}
