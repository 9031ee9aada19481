package handlers

import (
	"net/http"
	"strconv"

	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/internal/store"
	"github.com/SanikaPatil0624/ContentMagic/pkg/api"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
)

type savePostRequest struct {
	Topic          string           `json:"topic"`
	Platform       string           `json:"platform"`
	Tone           string           `json:"tone"`
	Captions       content.Captions `json:"captions"`
	Hashtags       []string         `json:"hashtags"`
	EngagementTips []string         `json:"engagementTips"`
}

// ListPosts returns the session's saved posts, newest first.
func (h *Handlers) ListPosts(c middleware.Context) {
	posts := h.store.List(middleware.OwnerID(c))
	c.JSON(http.StatusOK, posts)
}

// SavePost persists previously generated content for the session.
func (h *Handlers) SavePost(c middleware.Context) {
	var req savePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: codeValidation})
		return
	}

	post, err := h.store.Create(middleware.OwnerID(c), store.CreateInput{
		Topic:          req.Topic,
		Platform:       req.Platform,
		Tone:           req.Tone,
		Captions:       req.Captions,
		Hashtags:       req.Hashtags,
		EngagementTips: req.EngagementTips,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	h.metrics.PostsSaved.Inc()

	h.logger.WithFields(logging.Fields{
		"post_id":  post.ID,
		"platform": post.Platform,
	}).Info("Post saved")

	c.JSON(http.StatusOK, post)
}

// DeletePost removes one of the session's posts.
func (h *Handlers) DeletePost(c middleware.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid post id", Code: codeValidation})
		return
	}

	if err := h.store.Delete(middleware.OwnerID(c), id); err != nil {
		h.writeError(c, err)
		return
	}
	h.metrics.PostsDeleted.Inc()

	c.JSON(http.StatusOK, api.SuccessResponse{Success: true})
}
