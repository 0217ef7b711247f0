package localization

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableTranslator(t *testing.T) {
	ctx := context.Background()
	table, err := LoadTable("")
	require.NoError(t, err)

	t.Run("Should translate known prompts", func(t *testing.T) {
		out, err := table.Translate(ctx, "What is your full name?", "hi")
		require.NoError(t, err)
		assert.Equal(t, "आपका पूरा नाम क्या है?", out)
	})
	t.Run("Should return the source for unknown strings", func(t *testing.T) {
		out, err := table.Translate(ctx, "What is your favourite colour?", "hi")
		require.NoError(t, err)
		assert.Equal(t, "What is your favourite colour?", out)
	})
	t.Run("Should return the source for unknown languages", func(t *testing.T) {
		out, err := table.Translate(ctx, "What is your full name?", "fr")
		require.NoError(t, err)
		assert.Equal(t, "What is your full name?", out)
	})
	t.Run("Should list the embedded languages", func(t *testing.T) {
		assert.Equal(t, []string{"bn", "hi", "te"}, table.Languages())
	})
}

func TestLoadTable(t *testing.T) {
	t.Run("Should read an override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "locales.yaml")
		require.NoError(t, os.WriteFile(path, []byte("fr:\n  \"Download PDF\": \"Télécharger le PDF\"\n"), 0o600))
		table, err := LoadTable(path)
		require.NoError(t, err)
		out, ok := table.Lookup("Download PDF", "fr")
		assert.True(t, ok)
		assert.Equal(t, "Télécharger le PDF", out)
	})
	t.Run("Should fail on a missing file", func(t *testing.T) {
		_, err := LoadTable(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("Should fail on malformed yaml", func(t *testing.T) {
		_, err := NewTableTranslator([]byte("hi: [unterminated"))
		assert.Error(t, err)
	})
}
