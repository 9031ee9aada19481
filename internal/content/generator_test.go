package content

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/SanikaPatil0624/ContentMagic/pkg/llm"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
)

type scriptedStream struct {
	chunks []string
	pos    int
}

func (s *scriptedStream) Recv() (llm.Chunk, error) {
	if s.pos >= len(s.chunks) {
		return llm.Chunk{}, io.EOF
	}
	chunk := llm.Chunk{Content: s.chunks[s.pos]}
	s.pos++
	return chunk, nil
}

func (s *scriptedStream) Close() error { return nil }

type providerStub struct {
	chunks   []string
	err      error
	calls    int
	lastOpts *llm.Options
}

func (p *providerStub) Complete(_ context.Context, _ []llm.Message, opts *llm.Options) (llm.Stream, error) {
	p.calls++
	p.lastOpts = opts
	if p.err != nil {
		return nil, p.err
	}
	return &scriptedStream{chunks: p.chunks}, nil
}

func validCompletion(t *testing.T) string {
	t.Helper()
	payload := GeneratedContent{
		Captions: Captions{Short: "s", Medium: "m", Long: "l"},
		Hashtags: []string{
			"#one", "#two", "#three", "#four", "#five",
			"#six", "#seven", "#eight", "#nine", "ten",
		},
		EngagementTips: []string{"a", "b", "c", "d", "e"},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return string(raw)
}

func TestLLMGeneratorParsesStreamedJSON(t *testing.T) {
	raw := validCompletion(t)
	// Split the payload across chunks the way an SSE stream delivers it
	stub := &providerStub{chunks: []string{raw[:10], raw[10:]}}
	g := NewLLMGenerator(stub, logging.NewLogger())

	out, err := g.Generate(context.Background(), Request{Topic: "x", Platform: YouTube, Tone: Educational})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Captions.Medium != "m" {
		t.Fatalf("unexpected medium caption: %q", out.Captions.Medium)
	}
	if out.Hashtags[9] != "#ten" {
		t.Fatalf("expected bare hashtag to be normalized, got %q", out.Hashtags[9])
	}
	if stub.lastOpts == nil || !stub.lastOpts.JSONResponse {
		t.Fatal("expected JSON response mode to be requested")
	}
}

func TestLLMGeneratorStripsCodeFence(t *testing.T) {
	stub := &providerStub{chunks: []string{"```json\n" + validCompletion(t) + "\n```"}}
	g := NewLLMGenerator(stub, logging.NewLogger())

	out, err := g.Generate(context.Background(), Request{Topic: "x", Platform: YouTube, Tone: Educational})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Captions.Short != "s" {
		t.Fatalf("unexpected short caption: %q", out.Captions.Short)
	}
}

func TestLLMGeneratorProviderFailure(t *testing.T) {
	stub := &providerStub{err: errors.New("connection refused")}
	g := NewLLMGenerator(stub, logging.NewLogger())

	_, err := g.Generate(context.Background(), Request{Topic: "x", Platform: TikTok, Tone: Casual})
	var generation *GenerationError
	if !errors.As(err, &generation) {
		t.Fatalf("expected generation error, got %v", err)
	}
	if !strings.Contains(generation.Error(), "connection refused") {
		t.Fatalf("expected underlying cause in message, got %q", generation.Error())
	}
}

func TestLLMGeneratorRejectsUnparseableOutput(t *testing.T) {
	stub := &providerStub{chunks: []string{"here are some great captions for you!"}}
	g := NewLLMGenerator(stub, logging.NewLogger())

	_, err := g.Generate(context.Background(), Request{Topic: "x", Platform: TikTok, Tone: Casual})
	var generation *GenerationError
	if !errors.As(err, &generation) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestLLMGeneratorRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"too few hashtags", `{"captions":{"short":"s","medium":"m","long":"l"},"hashtags":["#a"],"engagementTips":["a","b","c","d","e"]}`},
		{"missing caption", `{"captions":{"short":"s","medium":"m"},"hashtags":["#1","#2","#3","#4","#5","#6","#7","#8","#9","#10"],"engagementTips":["a","b","c","d","e"]}`},
		{"wrong tip count", `{"captions":{"short":"s","medium":"m","long":"l"},"hashtags":["#1","#2","#3","#4","#5","#6","#7","#8","#9","#10"],"engagementTips":["a","b"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &providerStub{chunks: []string{tt.body}}
			g := NewLLMGenerator(stub, logging.NewLogger())

			_, err := g.Generate(context.Background(), Request{Topic: "x", Platform: TikTok, Tone: Casual})
			var generation *GenerationError
			if !errors.As(err, &generation) {
				t.Fatalf("expected generation error, got %v", err)
			}
		})
	}
}

func TestLLMGeneratorValidatesBeforeCalling(t *testing.T) {
	stub := &providerStub{chunks: []string{validCompletion(t)}}
	g := NewLLMGenerator(stub, logging.NewLogger())

	_, err := g.Generate(context.Background(), Request{Topic: "", Platform: TikTok, Tone: Casual})
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no provider call on invalid input, got %d", stub.calls)
	}
}
