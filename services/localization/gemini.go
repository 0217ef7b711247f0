package localization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	lru "github.com/hashicorp/golang-lru/v2"
	"google.golang.org/api/option"
)

// Generator produces text for a prompt.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// DefaultMemoSize bounds the number of generated translations kept in memory.
const DefaultMemoSize = 1024

// ChainTranslator answers from the table and sends misses to a generator.
// Generated translations are kept in a bounded LRU memo.
type ChainTranslator struct {
	table *TableTranslator
	gen   Generator
	memo  *lru.Cache[string, string]
}

func NewChainTranslator(table *TableTranslator, gen Generator) *ChainTranslator {
	return newChainTranslator(table, gen, DefaultMemoSize)
}

func newChainTranslator(table *TableTranslator, gen Generator, size int) *ChainTranslator {
	memo, err := lru.New[string, string](size)
	if err != nil {
		panic(fmt.Sprintf("localization: invalid memo size %d: %v", size, err))
	}
	return &ChainTranslator{table: table, gen: gen, memo: memo}
}

func translationPrompt(text, language string) string {
	return fmt.Sprintf(
		"Translate the following form prompt from English into the language with IETF tag %q. "+
			"Reply with the translation only, no quotes or commentary.\n\n%s",
		language, text,
	)
}

func (c *ChainTranslator) Translate(ctx context.Context, text, language string) (string, error) {
	if isSource(language) {
		return text, nil
	}
	if out, ok := c.table.Lookup(text, language); ok {
		return out, nil
	}

	key := language + "\x00" + text
	if out, ok := c.memo.Get(key); ok {
		return out, nil
	}

	out, err := c.gen.GenerateContent(ctx, translationPrompt(text, language))
	if err != nil {
		return "", fmt.Errorf("translate to %s: %w", language, err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return text, nil
	}
	c.memo.Add(key, out)
	return out, nil
}
