package content

import (
	"context"
	"fmt"
	"strings"
)

// Platform is a supported social media platform.
type Platform string

const (
	Instagram Platform = "Instagram"
	TikTok    Platform = "TikTok"
	YouTube   Platform = "YouTube"
	Facebook  Platform = "Facebook"
	Twitter   Platform = "Twitter"
	WhatsApp  Platform = "WhatsApp"
)

// Platforms lists every supported platform.
var Platforms = []Platform{Instagram, TikTok, YouTube, Facebook, Twitter, WhatsApp}

func (p Platform) Valid() bool {
	for _, known := range Platforms {
		if p == known {
			return true
		}
	}
	return false
}

// Key returns the lower-cased registry key for the platform.
func (p Platform) Key() string {
	return strings.ToLower(string(p))
}

// Tone is a supported content tone.
type Tone string

const (
	Professional  Tone = "Professional"
	Casual        Tone = "Casual"
	Humorous      Tone = "Humorous"
	Inspirational Tone = "Inspirational"
	Educational   Tone = "Educational"
)

// Tones lists every supported tone.
var Tones = []Tone{Professional, Casual, Humorous, Inspirational, Educational}

func (t Tone) Valid() bool {
	for _, known := range Tones {
		if t == known {
			return true
		}
	}
	return false
}

// Captions holds the three caption variants for a piece of content.
type Captions struct {
	Short  string `json:"short"`
	Medium string `json:"medium"`
	Long   string `json:"long"`
}

// GeneratedContent is the structured marketing copy produced for one
// (topic, platform, tone) triple. It is ephemeral until saved as a post.
type GeneratedContent struct {
	Captions       Captions `json:"captions"`
	Hashtags       []string `json:"hashtags"`
	EngagementTips []string `json:"engagementTips"`
}

// Request describes what to generate content for.
type Request struct {
	Topic    string   `json:"topic"`
	Platform Platform `json:"platform"`
	Tone     Tone     `json:"tone"`
}

// Validate checks the request fields, returning a *ValidationError naming
// every missing or invalid field.
func (r Request) Validate() error {
	var fields []string
	if strings.TrimSpace(r.Topic) == "" {
		fields = append(fields, "topic")
	}
	if !r.Platform.Valid() {
		fields = append(fields, "platform")
	}
	if !r.Tone.Valid() {
		fields = append(fields, "tone")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Generator produces marketing copy for a request. Implementations are
// selected once at startup: LLM-backed when a provider is configured,
// deterministic templates otherwise.
type Generator interface {
	Generate(ctx context.Context, req Request) (*GeneratedContent, error)
}

// ValidationError reports missing or invalid request fields.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// GenerationError wraps a failure of the AI backend or its output parsing.
// There is no automatic fallback to templates at runtime; the cause is
// surfaced to the caller.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("content generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

const (
	minHashtags = 10
	maxHashtags = 15
	numTips     = 5
)

// validateShape enforces the output contract shared by both generation paths:
// three non-empty captions, 10-15 #-prefixed hashtags, exactly 5 tips.
// Hashtags missing their prefix are normalized rather than rejected.
func validateShape(c *GeneratedContent) error {
	if strings.TrimSpace(c.Captions.Short) == "" ||
		strings.TrimSpace(c.Captions.Medium) == "" ||
		strings.TrimSpace(c.Captions.Long) == "" {
		return fmt.Errorf("expected short, medium and long captions")
	}
	if len(c.Hashtags) < minHashtags || len(c.Hashtags) > maxHashtags {
		return fmt.Errorf("expected %d-%d hashtags, got %d", minHashtags, maxHashtags, len(c.Hashtags))
	}
	for i, tag := range c.Hashtags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			return fmt.Errorf("hashtag %d is empty", i)
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		c.Hashtags[i] = tag
	}
	if len(c.EngagementTips) != numTips {
		return fmt.Errorf("expected %d engagement tips, got %d", numTips, len(c.EngagementTips))
	}
	for i, tip := range c.EngagementTips {
		if strings.TrimSpace(tip) == "" {
			return fmt.Errorf("engagement tip %d is empty", i)
		}
	}
	return nil
}
