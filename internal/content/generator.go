package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SanikaPatil0624/ContentMagic/pkg/llm"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
)

const (
	generateTimeout     = 30 * time.Second
	generateTemperature = 0.8
)

const generatorSystemPrompt = `You are a social media marketing expert specializing in video content optimization. Provide engaging, platform-specific content that drives engagement.`

// LLMGenerator produces marketing copy by delegating to a streaming LLM
// provider and parsing its structured JSON reply.
type LLMGenerator struct {
	provider llm.Provider
	logger   logging.Logger
}

func NewLLMGenerator(provider llm.Provider, logger logging.Logger) *LLMGenerator {
	return &LLMGenerator{
		provider: provider,
		logger:   logger,
	}
}

func (g *LLMGenerator) Generate(ctx context.Context, req Request) (*GeneratedContent, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	stream, err := g.provider.Complete(ctx, []llm.Message{
		{Role: "system", Content: generatorSystemPrompt},
		{Role: "user", Content: buildGeneratePrompt(req)},
	}, &llm.Options{JSONResponse: true, Temperature: generateTemperature})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	raw, err := llm.CollectText(stream)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	out, err := parseGenerated(raw)
	if err != nil {
		g.logger.WithError(err).WithFields(logging.Fields{
			"topic":    req.Topic,
			"platform": string(req.Platform),
		}).Warn("Generated content did not match the required shape")
		return nil, &GenerationError{Err: err}
	}

	return out, nil
}

func buildGeneratePrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create social media content for a video about %q for %s with a %s tone.\n\n",
		strings.TrimSpace(req.Topic), req.Platform, req.Tone)
	b.WriteString("Please provide:\n")
	b.WriteString("1. 3 engaging captions (short, medium, and long versions)\n")
	b.WriteString("2. 10-15 relevant hashtags\n")
	b.WriteString("3. 5 engagement tips to maximize reach\n\n")
	b.WriteString("Format the response as JSON with this structure:\n")
	b.WriteString(`{
  "captions": {
    "short": "...",
    "medium": "...",
    "long": "..."
  },
  "hashtags": ["...", "..."],
  "engagementTips": ["...", "..."]
}`)

	return b.String()
}

// parseGenerated decodes the model reply into GeneratedContent, tolerating a
// markdown code fence around the JSON object.
func parseGenerated(raw string) (*GeneratedContent, error) {
	raw = stripCodeFence(raw)
	if raw == "" {
		return nil, fmt.Errorf("empty completion")
	}

	var out GeneratedContent
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}
	if err := validateShape(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
