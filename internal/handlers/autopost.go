package handlers

import (
	"net/http"
	"time"

	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/internal/publisher"
	"github.com/SanikaPatil0624/ContentMagic/pkg/api"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
)

type autoPostRequest struct {
	Topic        string           `json:"topic"`
	Platform     string           `json:"platform"`
	Tone         string           `json:"tone"`
	Captions     content.Captions `json:"captions"`
	Hashtags     []string         `json:"hashtags"`
	ScheduledFor *time.Time       `json:"scheduledFor"`
	PostNow      bool             `json:"postNow"`
}

type autoPostResponse struct {
	Success bool `json:"success"`
	*publisher.Result
}

// AutoPost publishes or schedules content on a connected platform. The
// medium caption is what actually goes out.
func (h *Handlers) AutoPost(c middleware.Context) {
	var req autoPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: codeValidation})
		return
	}
	if req.Platform == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Error:   "Missing required fields",
			Code:    codeValidation,
			Details: map[string]interface{}{"fields": []string{"platform"}},
		})
		return
	}

	pubReq := publisher.Request{
		Platform: req.Platform,
		Caption:  req.Captions.Medium,
		Hashtags: req.Hashtags,
		PostNow:  req.PostNow,
	}
	if req.ScheduledFor != nil {
		pubReq.ScheduledFor = *req.ScheduledFor
	}

	result, err := h.publisher.Publish(c.Request.Context(), pubReq)
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.metrics.Publishes.WithLabelValues(result.Status).Inc()

	h.logger.WithFields(logging.Fields{
		"platform": result.Platform,
		"status":   result.Status,
		"post_id":  result.PostID,
	}).Info("Auto-post completed")

	c.JSON(http.StatusOK, autoPostResponse{Success: true, Result: result})
}
