// Package store keeps saved posts in process memory, partitioned by the
// opaque session owner identifier. Posts are immutable once saved; the only
// operations are list, create and delete, all owner-scoped by the caller.
package store

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/SanikaPatil0624/ContentMagic/internal/content"
)

var (
	// ErrNotFound is returned when the post does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrForbidden is returned when the post exists but belongs to a
	// different owner.
	ErrForbidden = errors.New("post belongs to another owner")
)

// ValidationError reports missing required fields on create.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Metrics are synthetic usage numbers generated once when a post is saved.
type Metrics struct {
	Views      int    `json:"views"`
	Likes      int    `json:"likes"`
	Comments   int    `json:"comments"`
	Shares     int    `json:"shares"`
	Engagement string `json:"engagement"`
}

// Post is a saved content item owned by exactly one session.
type Post struct {
	ID             int64            `json:"id"`
	OwnerID        string           `json:"-"`
	Topic          string           `json:"topic"`
	Platform       string           `json:"platform"`
	Tone           string           `json:"tone"`
	Captions       content.Captions `json:"captions"`
	Hashtags       []string         `json:"hashtags"`
	EngagementTips []string         `json:"engagementTips"`
	Metrics        Metrics          `json:"metrics"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// CreateInput carries the content being saved. Captions, hashtags and tips
// are copied as-is from the previously generated content, never re-derived.
type CreateInput struct {
	Topic          string
	Platform       string
	Tone           string
	Captions       content.Captions
	Hashtags       []string
	EngagementTips []string
}

// Store is an in-memory, newest-first collection of posts.
type Store struct {
	mu     sync.RWMutex
	posts  []Post
	nextID int64
	rng    *rand.Rand
	now    func() time.Time
}

func New() *Store {
	return &Store{
		nextID: 1,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		now:    time.Now,
	}
}

// List returns the owner's posts, most recently created first. Other owners'
// posts are never visible.
func (s *Store) List(ownerID string) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Post, 0)
	for _, post := range s.posts {
		if post.OwnerID == ownerID {
			out = append(out, clonePost(post))
		}
	}
	return out
}

// Create saves a new post for the owner, stamping identity, creation time and
// synthetic metrics. The new post becomes the head of the owner's list.
func (s *Store) Create(ownerID string, input CreateInput) (Post, error) {
	if err := validateInput(ownerID, input); err != nil {
		return Post{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := Post{
		ID:             s.nextID,
		OwnerID:        ownerID,
		Topic:          input.Topic,
		Platform:       input.Platform,
		Tone:           input.Tone,
		Captions:       input.Captions,
		Hashtags:       append([]string(nil), input.Hashtags...),
		EngagementTips: append([]string(nil), input.EngagementTips...),
		Metrics:        s.newMetrics(),
		CreatedAt:      s.now().UTC(),
	}
	s.nextID++

	s.posts = append([]Post{post}, s.posts...)
	return clonePost(post), nil
}

// Delete removes the owner's post. A post owned by a different session is
// left untouched and reported as forbidden.
func (s *Store) Delete(ownerID string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, post := range s.posts {
		if post.ID != id {
			continue
		}
		if post.OwnerID != ownerID {
			return ErrForbidden
		}
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
		return nil
	}
	return ErrNotFound
}

// Metric ranges match the synthetic numbers the UI expects:
// views 1,000-51,000, likes 100-5,100, comments 10-510, shares 50-1,050,
// engagement 2.00%-12.00%.
func (s *Store) newMetrics() Metrics {
	return Metrics{
		Views:      s.rng.Intn(50000) + 1000,
		Likes:      s.rng.Intn(5000) + 100,
		Comments:   s.rng.Intn(500) + 10,
		Shares:     s.rng.Intn(1000) + 50,
		Engagement: fmt.Sprintf("%.2f%%", s.rng.Float64()*10+2),
	}
}

func validateInput(ownerID string, input CreateInput) error {
	var fields []string
	if strings.TrimSpace(ownerID) == "" {
		fields = append(fields, "ownerId")
	}
	if strings.TrimSpace(input.Topic) == "" {
		fields = append(fields, "topic")
	}
	if strings.TrimSpace(input.Platform) == "" {
		fields = append(fields, "platform")
	}
	if strings.TrimSpace(input.Tone) == "" {
		fields = append(fields, "tone")
	}
	if input.Captions.Short == "" && input.Captions.Medium == "" && input.Captions.Long == "" {
		fields = append(fields, "captions")
	}
	if len(input.Hashtags) == 0 {
		fields = append(fields, "hashtags")
	}
	if len(input.EngagementTips) == 0 {
		fields = append(fields, "engagementTips")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func clonePost(post Post) Post {
	post.Hashtags = append([]string(nil), post.Hashtags...)
	post.EngagementTips = append([]string(nil), post.EngagementTips...)
	return post
}
