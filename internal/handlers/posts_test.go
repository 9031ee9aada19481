package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/SanikaPatil0624/ContentMagic/internal/store"
)

func savePayload(topic string) map[string]interface{} {
	return map[string]interface{}{
		"topic":    topic,
		"platform": "Instagram",
		"tone":     "Professional",
		"captions": map[string]string{
			"short":  "short",
			"medium": "medium",
			"long":   "long",
		},
		"hashtags":       []string{"#one", "#two"},
		"engagementTips": []string{"a", "b", "c", "d", "e"},
	}
}

func TestSaveAndListPosts(t *testing.T) {
	h := setup()

	for i := 0; i < 3; i++ {
		resp := h.do(t, http.MethodPost, "/api/posts", "owner-a", savePayload(fmt.Sprintf("topic %d", i)))
		if resp.Code != http.StatusOK {
			t.Fatalf("save %d: expected 200, got %d (body: %s)", i, resp.Code, resp.Body.String())
		}
	}

	resp := h.do(t, http.MethodGet, "/api/posts", "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var posts []store.Post
	decode(t, resp, &posts)
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	if posts[0].Topic != "topic 2" {
		t.Fatalf("expected newest post first, got %q", posts[0].Topic)
	}
	if posts[0].Metrics.Views == 0 {
		t.Fatal("expected synthetic metrics on the saved post")
	}
}

func TestListPostsIsSessionScoped(t *testing.T) {
	h := setup()

	if resp := h.do(t, http.MethodPost, "/api/posts", "owner-a", savePayload("mine")); resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp := h.do(t, http.MethodGet, "/api/posts", "owner-b", nil)
	var posts []store.Post
	decode(t, resp, &posts)
	if len(posts) != 0 {
		t.Fatalf("expected no posts for another session, got %d", len(posts))
	}
}

func TestSavePostRejectsMissingFields(t *testing.T) {
	h := setup()

	payload := savePayload("x")
	delete(payload, "hashtags")
	delete(payload, "engagementTips")

	resp := h.do(t, http.MethodPost, "/api/posts", "owner-a", payload)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestDeletePostFlow(t *testing.T) {
	h := setup()

	resp := h.do(t, http.MethodPost, "/api/posts", "owner-a", savePayload("to delete"))
	var created store.Post
	decode(t, resp, &created)

	// Another session cannot delete it
	resp = h.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", created.ID), "owner-b", nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.Code)
	}

	// The post is still there for its owner
	resp = h.do(t, http.MethodGet, "/api/posts", "owner-a", nil)
	var posts []store.Post
	decode(t, resp, &posts)
	if len(posts) != 1 {
		t.Fatalf("expected the post to survive, got %d posts", len(posts))
	}

	// The owner can delete it
	resp = h.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", created.ID), "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	// Deleting again reports not found
	resp = h.do(t, http.MethodDelete, fmt.Sprintf("/api/posts/%d", created.ID), "owner-a", nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestDeletePostRejectsBadID(t *testing.T) {
	h := setup()

	resp := h.do(t, http.MethodDelete, "/api/posts/abc", "owner-a", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
