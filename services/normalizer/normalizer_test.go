package normalizer

import (
	"testing"

	"voiceform/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Email(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"embedded address is extracted lower-cased", "My email is John.Doe@Example.com thanks", "john.doe@example.com"},
		{"multi-label domain drops trailing punctuation", "contact me at a_b+c@mail.co.uk.", "a_b+c@mail.co.uk"},
		{"spoken address gets default domain", "my email is john at gmail dot com", "myemailisjohnatgmaildotcom@gmail.com"},
		{"spoken address keeps its own at sign", "e-mail john@localhost", "e-mailjohn@localhost"},
		{"no address and no keyword falls back to text", "John at Example", "john at example"},
		{"whitespace only yields empty", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, models.FieldEmail, "en"))
		})
	}
}

func TestNormalize_Phone(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"dashed number in a sentence", "my number is 555-123-4567", "5551234567"},
		{"parenthesized area code", "(555) 123-4567", "5551234567"},
		{"country code keeps plus", "+1 555 123 4567", "+15551234567"},
		{"spread out ten digits", "1 2 3 4 5 6 7 8 9 0", "1234567890"},
		{"spread out long digits get plus", "9 1 9 8 7 6 5 4 3 2 1 0", "+919876543210"},
		{"too few digits falls back to text", "Call me at 12345", "call me at 12345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, models.FieldTel, "en"))
		})
	}
	t.Run("phone is an alias of tel", func(t *testing.T) {
		assert.Equal(t, "5551234567", Normalize("555.123.4567", models.FieldPhone, "en"))
	})
}

func TestNormalize_Date(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"day first token verbatim", "I was born on 15/08/1990 in Delhi", "15/08/1990"},
		{"two digit year", "it was 1-2-99", "1-2-99"},
		{"year first token verbatim", "1990-08-15", "1990-08-15"},
		{"month name left as spoken", "January 15 1990", "january 15 1990"},
		{"unstructured falls back to text", "The Fifth", "the fifth"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Normalize(tc.in, models.FieldDate, "en"))
		})
	}
}

func TestNormalize_Text(t *testing.T) {
	t.Run("only the first character is capitalized", func(t *testing.T) {
		assert.Equal(t, "John smith", Normalize("John Smith", models.FieldText, "en"))
	})
	t.Run("trims and lower-cases the rest", func(t *testing.T) {
		assert.Equal(t, "New delhi", Normalize("  new DELHI ", models.FieldText, "hi"))
	})
	t.Run("unknown types behave like text", func(t *testing.T) {
		assert.Equal(t, "Jane doe", Normalize("Jane Doe", models.FieldSignature, "en"))
		assert.Equal(t, "Jane doe", Normalize("Jane Doe", "", "en"))
	})
	t.Run("non-ascii first rune", func(t *testing.T) {
		assert.Equal(t, "Élan vital", Normalize("élan Vital", models.FieldText, "en"))
	})
	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", Normalize("", models.FieldText, "en"))
	})
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := map[models.FieldType][]string{
		models.FieldEmail: {
			"My email is John.Doe@Example.com",
			"my email is john at gmail dot com",
			"e-mail john@localhost",
			"nothing useful",
		},
		models.FieldTel: {
			"my number is 555-123-4567",
			"+1 (555) 123-4567",
			"9 1 9 8 7 6 5 4 3 2 1 0",
			"1 2 3 4 5 6 7 8 9 0",
			"no digits here",
		},
	}
	for fieldType, list := range inputs {
		for _, in := range list {
			once := Normalize(in, fieldType, "en")
			assert.Equal(t, once, Normalize(once, fieldType, "en"), "type=%s input=%q", fieldType, in)
		}
	}
}

func TestResult(t *testing.T) {
	res := Result("my number is 555-123-4567", models.FieldTel, "en", "phone")
	assert.Equal(t, models.NormalizationResult{
		Value:    "5551234567",
		Original: "my number is 555-123-4567",
		Field:    "phone",
	}, res)
}

func TestRecognized(t *testing.T) {
	assert.True(t, Recognized("a@b.io", models.FieldEmail))
	assert.False(t, Recognized("john", models.FieldEmail))
	assert.True(t, Recognized("555 123 4567", models.FieldTel))
	assert.False(t, Recognized("call me maybe", models.FieldTel))
	assert.True(t, Recognized("January 15", models.FieldDate))
	assert.False(t, Recognized("soon", models.FieldDate))
	assert.True(t, Recognized("", models.FieldText))
}

func TestNormalize_PhoneLongFallback(t *testing.T) {
	once := Normalize("1 2 3 4 5 6 7 8 9 0 1 2 3 4", models.FieldTel, "en")
	assert.Equal(t, "+12345678901234", once)
	// A second pass matches the structured pattern on a 13-digit prefix.
	assert.Equal(t, "+1234567890123", Normalize(once, models.FieldTel, "en"))
}
