package intake

import (
	"testing"

	"voiceform/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldIDs(fields []models.FieldSpec) []string {
	ids := make([]string, len(fields))
	for i, f := range fields {
		ids[i] = f.ID
	}
	return ids
}

func TestClassify(t *testing.T) {
	t.Run("Should map pdf and images to the document schema", func(t *testing.T) {
		for _, mt := range []string{MimePDF, MimeJPEG, MimePNG, "application/pdf; charset=binary"} {
			fields, err := Classify(mt)
			require.NoError(t, err, mt)
			assert.Len(t, fields, 6, mt)
			assert.Equal(t, []string{"fullName", "email", "phone", "address", "signature", "date"}, fieldIDs(fields))
		}
	})
	t.Run("Should map word documents to the word-processor schema", func(t *testing.T) {
		for _, mt := range []string{MimeDOC, MimeDOCX} {
			fields, err := Classify(mt)
			require.NoError(t, err, mt)
			assert.Equal(t, []string{"applicantName", "idNumber", "contact", "email", "reference"}, fieldIDs(fields))
		}
	})
	t.Run("Should reject types outside the allow-list", func(t *testing.T) {
		for _, mt := range []string{"text/plain", "image/gif", "", "application/octet-stream"} {
			_, err := Classify(mt)
			assert.ErrorIs(t, err, ErrUnsupportedType, mt)
		}
	})
	t.Run("Should hand out copies", func(t *testing.T) {
		fields, err := Classify(MimePDF)
		require.NoError(t, err)
		fields[0].ID = "mutated"
		assert.Equal(t, "fullName", DocumentFields[0].ID)
	})
}

func TestDetectType(t *testing.T) {
	pdfHead := []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	pngHead := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	assert.Equal(t, MimeJPEG, DetectType("image/jpeg", pdfHead), "declared type wins")
	assert.Equal(t, MimePDF, DetectType("", pdfHead))
	assert.Equal(t, "application/octet-stream", DetectType("application/octet-stream", pngHead), "generic declared type is not sniffed")
	assert.False(t, Allowed(DetectType("application/octet-stream", pngHead)))
	assert.Equal(t, "", DetectType("", nil))
	assert.False(t, Allowed(DetectType("", []byte("just some text"))))
}
