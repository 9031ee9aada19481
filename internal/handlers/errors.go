package handlers

import (
	"errors"
	"net/http"

	"github.com/SanikaPatil0624/ContentMagic/internal/connections"
	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/internal/publisher"
	"github.com/SanikaPatil0624/ContentMagic/internal/store"
	"github.com/SanikaPatil0624/ContentMagic/pkg/api"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
)

// Error codes carried in the response envelope so the UI can branch on the
// failure kind without parsing messages.
const (
	codeValidation         = "validation_error"
	codeGeneration         = "generation_error"
	codeAuthorization      = "authorization_error"
	codeConnectionRequired = "connection_required"
	codeNotFound           = "not_found"
	codeForbidden          = "forbidden"
	codeInternal           = "internal_error"
)

// writeError maps a domain error onto an HTTP status and envelope. Every
// operation funnels its failures through here; nothing crashes the process.
func (h *Handlers) writeError(c middleware.Context, err error) {
	var contentValidation *content.ValidationError
	var storeValidation *store.ValidationError
	var generation *content.GenerationError
	var connRequired *publisher.ConnectionRequiredError

	switch {
	case errors.As(err, &contentValidation):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Missing required fields",
			Code:    codeValidation,
			Details: map[string]interface{}{"fields": contentValidation.Fields},
		})
	case errors.As(err, &storeValidation):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Missing required fields",
			Code:    codeValidation,
			Details: map[string]interface{}{"fields": storeValidation.Fields},
		})
	case errors.As(err, &generation):
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error:   "Failed to generate content",
			Code:    codeGeneration,
			Details: map[string]interface{}{"cause": generation.Err.Error()},
		})
	case errors.Is(err, connections.ErrAuthorizationCode):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: "Authorization failed",
			Code:  codeAuthorization,
		})
	case errors.As(err, &connRequired):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error: connRequired.Error(),
			Code:  codeConnectionRequired,
			Details: map[string]interface{}{
				"needs_auth": true,
				"platform":   connRequired.Platform,
			},
		})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Error: "Post not found",
			Code:  codeNotFound,
		})
	case errors.Is(err, store.ErrForbidden):
		c.JSON(http.StatusForbidden, api.ErrorResponse{
			Error: "Unauthorized: You can only delete your own posts",
			Code:  codeForbidden,
		})
	default:
		h.logger.WithError(err).WithField("path", c.Request.URL.Path).Error("Unhandled request error")
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Error: "Internal server error",
			Code:  codeInternal,
		})
	}
}
