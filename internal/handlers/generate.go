package handlers

import (
	"net/http"

	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/pkg/api"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
)

// Generate produces marketing copy for a (topic, platform, tone) triple.
// The result is ephemeral; the client decides whether to save it as a post.
func (h *Handlers) Generate(c middleware.Context) {
	var req content.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: codeValidation})
		return
	}

	generated, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		h.metrics.Generations.WithLabelValues(h.genSource, "error").Inc()
		h.writeError(c, err)
		return
	}
	h.metrics.Generations.WithLabelValues(h.genSource, "ok").Inc()

	c.JSON(http.StatusOK, generated)
}
