package handlers

import (
	"net/http"

	"github.com/SanikaPatil0624/ContentMagic/pkg/api"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
)

// ListAccounts returns every connected platform account.
func (h *Handlers) ListAccounts(c middleware.Context) {
	c.JSON(http.StatusOK, h.registry.List())
}

// ConnectCallback simulates the OAuth callback: the authorization code from
// the query is exchanged for demo credentials and stored.
func (h *Handlers) ConnectCallback(c middleware.Context) {
	platform := c.Param("platform")

	account, err := h.registry.Connect(platform, c.Query("code"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithFields(logging.Fields{
		"platform": platform,
		"username": account.Username,
	}).Info("Platform account connected")

	c.JSON(http.StatusOK, account)
}

// Disconnect removes a platform connection. Disconnecting an absent platform
// still succeeds.
func (h *Handlers) Disconnect(c middleware.Context) {
	platform := c.Param("platform")
	h.registry.Disconnect(platform)

	h.logger.WithField("platform", platform).Info("Platform account disconnected")

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
