package handlers

import (
	"net/http"
	"testing"

	"github.com/SanikaPatil0624/ContentMagic/internal/connections"
)

func TestConnectCallbackStoresDemoAccount(t *testing.T) {
	h := setup()

	resp := h.do(t, http.MethodGet, "/api/auth/Instagram/callback?code=abc123", "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body: %s)", resp.Code, resp.Body.String())
	}

	var account connections.Connection
	decode(t, resp, &account)
	if account.Username != "demo_user_Instagram" {
		t.Fatalf("unexpected username: %q", account.Username)
	}
	if account.AccessToken != "demo_token_abc123" {
		t.Fatalf("unexpected token: %q", account.AccessToken)
	}

	if _, ok := h.registry.Get("instagram"); !ok {
		t.Fatal("expected the connection to be stored under the lowercase key")
	}
}

func TestConnectCallbackRejectsEmptyCode(t *testing.T) {
	h := setup()

	resp := h.do(t, http.MethodGet, "/api/auth/Instagram/callback", "owner-a", nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var out struct {
		Code string `json:"code"`
	}
	decode(t, resp, &out)
	if out.Code != "authorization_error" {
		t.Fatalf("expected authorization_error code, got %q", out.Code)
	}
}

func TestListAccounts(t *testing.T) {
	h := setup()

	resp := h.do(t, http.MethodGet, "/api/auth/accounts", "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var accounts map[string]connections.Connection
	decode(t, resp, &accounts)
	if len(accounts) != 0 {
		t.Fatalf("expected no accounts initially, got %d", len(accounts))
	}

	h.do(t, http.MethodGet, "/api/auth/TikTok/callback?code=abc", "owner-a", nil)

	resp = h.do(t, http.MethodGet, "/api/auth/accounts", "owner-a", nil)
	decode(t, resp, &accounts)
	if _, ok := accounts["tiktok"]; !ok {
		t.Fatalf("expected tiktok connection, got %v", accounts)
	}
}

func TestDisconnectRemovesAccount(t *testing.T) {
	h := setup()

	h.do(t, http.MethodGet, "/api/auth/Twitter/callback?code=abc", "owner-a", nil)

	resp := h.do(t, http.MethodPost, "/api/auth/disconnect/Twitter", "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if _, ok := h.registry.Get("twitter"); ok {
		t.Fatal("expected the connection to be removed")
	}

	// Disconnecting an absent platform still succeeds
	resp = h.do(t, http.MethodPost, "/api/auth/disconnect/Twitter", "owner-a", nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for a repeated disconnect, got %d", resp.Code)
	}
}
