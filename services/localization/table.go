package localization

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-yaml"
)

//go:embed locales.yaml
var embeddedLocales []byte

// TableTranslator serves translations from a language -> source -> text table.
type TableTranslator struct {
	table map[string]map[string]string
}

// NewTableTranslator parses a YAML table.
func NewTableTranslator(data []byte) (*TableTranslator, error) {
	table := map[string]map[string]string{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse locale table: %w", err)
	}
	return &TableTranslator{table: table}, nil
}

// LoadTable reads the table at path, or the embedded table when path is empty.
func LoadTable(path string) (*TableTranslator, error) {
	if path == "" {
		return NewTableTranslator(embeddedLocales)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale table: %w", err)
	}
	return NewTableTranslator(data)
}

// Lookup returns the translation and whether one was found.
func (t *TableTranslator) Lookup(text, language string) (string, bool) {
	out, ok := t.table[language][text]
	if !ok || out == "" {
		return text, false
	}
	return out, true
}

func (t *TableTranslator) Translate(_ context.Context, text, language string) (string, error) {
	out, _ := t.Lookup(text, language)
	return out, nil
}

// Languages lists the languages present in the table.
func (t *TableTranslator) Languages() []string {
	langs := make([]string, 0, len(t.table))
	for l := range t.table {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}
