// Package publisher simulates the publish-or-schedule action against a
// connected social platform account. Real platform APIs (Instagram Graph,
// TikTok, YouTube Data, Facebook Graph, Twitter v2) are external
// collaborators; this keeps only their state-transition contract: a publish
// attempt either is rejected for lacking a connection, or yields a published
// or scheduled result.
package publisher

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SanikaPatil0624/ContentMagic/internal/connections"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
)

// DefaultDelay stands in for real platform API latency.
const DefaultDelay = time.Second

// ConnectionRequiredError is returned when publishing to a platform with no
// connected account. It carries the platform so callers can route the user
// to the connect flow.
type ConnectionRequiredError struct {
	Platform string
}

func (e *ConnectionRequiredError) Error() string {
	return fmt.Sprintf("Please connect your %s account first", e.Platform)
}

// Request describes one publish attempt.
type Request struct {
	Platform     string
	Caption      string
	Hashtags     []string
	ScheduledFor time.Time
	PostNow      bool
}

// Result is the outcome of a simulated publish.
type Result struct {
	PostID       string     `json:"postId"`
	Status       string     `json:"status"`
	Platform     string     `json:"platform"`
	Username     string     `json:"username"`
	Message      string     `json:"message"`
	PostedAt     *time.Time `json:"postedAt,omitempty"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"`
}

const (
	StatusPublished = "published"
	StatusScheduled = "scheduled"
)

type Config struct {
	Registry *connections.Registry
	Delay    time.Duration
	Logger   logging.Logger
}

// Publisher gates publish attempts on the connection registry and simulates
// the platform call.
type Publisher struct {
	registry *connections.Registry
	delay    time.Duration
	logger   logging.Logger
	now      func() time.Time
}

func New(cfg Config) *Publisher {
	return &Publisher{
		registry: cfg.Registry,
		delay:    cfg.Delay,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

// Publish checks the connection gate, waits out the simulated latency, and
// returns a deterministic result. No state is mutated on rejection.
func (p *Publisher) Publish(ctx context.Context, req Request) (*Result, error) {
	account, ok := p.registry.Get(req.Platform)
	if !ok {
		return nil, &ConnectionRequiredError{Platform: req.Platform}
	}

	p.logger.WithFields(logging.Fields{
		"platform": req.Platform,
		"username": account.Username,
		"post_now": req.PostNow,
	}).Info("Simulating platform publish")

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	now := p.now()
	result := &Result{
		PostID:   fmt.Sprintf("%s_%d", platformID(req.Platform), now.UnixMilli()),
		Platform: req.Platform,
		Username: account.Username,
	}

	if req.PostNow {
		postedAt := now.UTC()
		result.Status = StatusPublished
		result.PostedAt = &postedAt
		result.Message = fmt.Sprintf("✅ Successfully posted to %s as @%s!", req.Platform, account.Username)
	} else {
		scheduledFor := req.ScheduledFor
		result.Status = StatusScheduled
		result.ScheduledFor = &scheduledFor
		result.Message = fmt.Sprintf("📅 Post scheduled for %s on %s",
			scheduledFor.Local().Format("1/2/2006, 3:04:05 PM"), req.Platform)
	}

	return result, nil
}

func platformID(platform string) string {
	return strings.ToLower(platform)
}
