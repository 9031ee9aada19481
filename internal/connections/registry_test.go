package connections

import (
	"errors"
	"testing"
)

func TestConnectRequiresCode(t *testing.T) {
	r := NewRegistry()

	_, err := r.Connect("Instagram", "")
	if !errors.Is(err, ErrAuthorizationCode) {
		t.Fatalf("expected authorization error, got %v", err)
	}
	_, err = r.Connect("Instagram", "   ")
	if !errors.Is(err, ErrAuthorizationCode) {
		t.Fatalf("expected authorization error for blank code, got %v", err)
	}
	if len(r.List()) != 0 {
		t.Fatal("expected no connection to be stored on failure")
	}
}

func TestConnectStoresDemoCredentials(t *testing.T) {
	r := NewRegistry()

	account, err := r.Connect("Instagram", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.Username != "demo_user_Instagram" {
		t.Fatalf("unexpected username: %q", account.Username)
	}
	if account.AccessToken != "demo_token_abc" {
		t.Fatalf("unexpected token: %q", account.AccessToken)
	}
	if account.ConnectedAt.IsZero() {
		t.Fatal("expected connectedAt to be stamped")
	}

	stored, ok := r.Get("INSTAGRAM")
	if !ok {
		t.Fatal("expected lookup to be case-insensitive")
	}
	if stored.AccessToken != account.AccessToken {
		t.Fatal("expected stored connection to match")
	}
}

func TestConnectOverwritesPriorConnection(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Connect("TikTok", "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.Connect("TikTok", "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	accounts := r.List()
	if len(accounts) != 1 {
		t.Fatalf("expected one connection, got %d", len(accounts))
	}
	if accounts["tiktok"].AccessToken != "demo_token_second" {
		t.Fatalf("expected last writer to win, got %q", accounts["tiktok"].AccessToken)
	}
}

func TestDisconnectIsIdempotent(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Connect("Instagram", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Disconnect("instagram")
	if _, ok := r.List()["instagram"]; ok {
		t.Fatal("expected instagram key to be removed")
	}

	// Absence of a prior connection is not an error
	r.Disconnect("instagram")
	r.Disconnect("never-connected")
}

func TestListReturnsSnapshot(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Connect("Twitter", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot := r.List()
	delete(snapshot, "twitter")

	if _, ok := r.Get("Twitter"); !ok {
		t.Fatal("mutating the snapshot must not affect the registry")
	}
}
