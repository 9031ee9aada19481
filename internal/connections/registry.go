// Package connections tracks which social platforms have a simulated
// connected account. A connection is purely a publish-gating flag: the real
// OAuth exchange with a platform is an external collaborator, so connecting
// here synthesizes deterministic demo credentials from the authorization code.
package connections

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrAuthorizationCode is returned when connect is attempted without an
// authorization code.
var ErrAuthorizationCode = errors.New("authorization code is required")

// Connection asserts that a platform account is linked.
type Connection struct {
	Platform    string    `json:"platform"`
	Username    string    `json:"username"`
	AccessToken string    `json:"accessToken"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// Registry holds at most one connection per platform key (lower-cased
// platform name). It is process-wide state shared by every request, so all
// access goes through the mutex; connecting twice overwrites the prior entry.
type Registry struct {
	mu       sync.RWMutex
	accounts map[string]Connection
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		accounts: make(map[string]Connection),
		now:      time.Now,
	}
}

// List returns a snapshot of the current connections keyed by platform.
func (r *Registry) List() map[string]Connection {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Connection, len(r.accounts))
	for key, account := range r.accounts {
		out[key] = account
	}
	return out
}

// Get returns the connection for a platform, if any.
func (r *Registry) Get(platform string) (Connection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[platformKey(platform)]
	return account, ok
}

// Connect simulates a successful OAuth authorization-code exchange and stores
// the resulting connection, replacing any prior one for the same platform.
func (r *Registry) Connect(platform, code string) (Connection, error) {
	if strings.TrimSpace(code) == "" {
		return Connection{}, ErrAuthorizationCode
	}

	account := Connection{
		Platform:    platform,
		Username:    "demo_user_" + platform,
		AccessToken: "demo_token_" + code,
		ConnectedAt: r.now().UTC(),
	}

	r.mu.Lock()
	r.accounts[platformKey(platform)] = account
	r.mu.Unlock()

	return account, nil
}

// Disconnect removes a platform's connection. Removing an absent connection
// is not an error.
func (r *Registry) Disconnect(platform string) {
	r.mu.Lock()
	delete(r.accounts, platformKey(platform))
	r.mu.Unlock()
}

func platformKey(platform string) string {
	return strings.ToLower(strings.TrimSpace(platform))
}
