// Package handlers binds the content lifecycle to the HTTP surface: generate,
// save/list/delete posts, manage platform connections, and auto-post.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/SanikaPatil0624/ContentMagic/internal/connections"
	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/internal/publisher"
	"github.com/SanikaPatil0624/ContentMagic/internal/store"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
)

// Metrics holds the service's custom Prometheus collectors.
type Metrics struct {
	Generations  *prometheus.CounterVec
	PostsSaved   prometheus.Counter
	PostsDeleted prometheus.Counter
	Publishes    *prometheus.CounterVec
}

// NewMetrics creates the custom collectors. The caller registers them with
// the service's metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		Generations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentmagic_generations_total",
				Help: "Content generations by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		PostsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentmagic_posts_saved_total",
			Help: "Posts saved to the store",
		}),
		PostsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contentmagic_posts_deleted_total",
			Help: "Posts deleted from the store",
		}),
		Publishes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentmagic_publishes_total",
				Help: "Simulated publishes by resulting status",
			},
			[]string{"status"},
		),
	}
}

// Collectors returns every custom collector for registration.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Generations, m.PostsSaved, m.PostsDeleted, m.Publishes}
}

type Config struct {
	Generator       content.Generator
	GeneratorSource string // "llm" or "template", used as a metric label
	Store           *store.Store
	Registry        *connections.Registry
	Publisher       *publisher.Publisher
	Metrics         *Metrics
	Logger          logging.Logger
}

// Handlers carries the injected state containers shared by all routes.
type Handlers struct {
	generator content.Generator
	genSource string
	store     *store.Store
	registry  *connections.Registry
	publisher *publisher.Publisher
	metrics   *Metrics
	logger    logging.Logger
}

func New(cfg Config) *Handlers {
	return &Handlers{
		generator: cfg.Generator,
		genSource: cfg.GeneratorSource,
		store:     cfg.Store,
		registry:  cfg.Registry,
		publisher: cfg.Publisher,
		metrics:   cfg.Metrics,
		logger:    cfg.Logger,
	}
}

// Register attaches every API route to the router.
func (h *Handlers) Register(router gin.IRouter) {
	apiGroup := router.Group("/api")

	apiGroup.POST("/generate", h.Generate)

	apiGroup.GET("/posts", h.ListPosts)
	apiGroup.POST("/posts", h.SavePost)
	apiGroup.DELETE("/posts/:id", h.DeletePost)

	apiGroup.GET("/auth/accounts", h.ListAccounts)
	apiGroup.GET("/auth/:platform/callback", h.ConnectCallback)
	apiGroup.POST("/auth/disconnect/:platform", h.Disconnect)

	apiGroup.POST("/auto-post", h.AutoPost)
}
