package main

import (
	"github.com/SanikaPatil0624/ContentMagic/internal/connections"
	"github.com/SanikaPatil0624/ContentMagic/internal/content"
	"github.com/SanikaPatil0624/ContentMagic/internal/handlers"
	"github.com/SanikaPatil0624/ContentMagic/internal/publisher"
	"github.com/SanikaPatil0624/ContentMagic/internal/store"
	"github.com/SanikaPatil0624/ContentMagic/pkg/config"
	"github.com/SanikaPatil0624/ContentMagic/pkg/llm"
	"github.com/SanikaPatil0624/ContentMagic/pkg/logging"
	"github.com/SanikaPatil0624/ContentMagic/pkg/middleware"
	"github.com/SanikaPatil0624/ContentMagic/pkg/monitoring"
	"github.com/SanikaPatil0624/ContentMagic/pkg/server"
	"github.com/SanikaPatil0624/ContentMagic/pkg/version"
)

const serviceName = "contentmagic"

func main() {
	logger := logging.NewLoggerWithService(serviceName)
	config.LoadEnv(logger)

	port := config.GetEnv("PORT", "3001")

	// Content generation: LLM-backed when a provider is configured,
	// deterministic templates otherwise. A failing LLM call is surfaced to
	// the caller, never silently replaced by templates.
	llmConfig := llm.LoadConfig()
	var generator content.Generator
	generatorSource := "template"
	if llmConfig.Configured() {
		provider, err := llm.NewProvider(llmConfig)
		if err != nil {
			logger.WithError(err).Fatal("Invalid LLM configuration")
		}
		generator = content.NewLLMGenerator(provider, logger)
		generatorSource = "llm"
		logger.WithField("provider", llmConfig.Provider).Info("AI content generation enabled")
	} else {
		generator = content.NewTemplateGenerator()
		logger.Warn("No LLM configured; using template content generation")
	}

	postStore := store.New()
	registry := connections.NewRegistry()

	pub := publisher.New(publisher.Config{
		Registry: registry,
		Delay:    config.GetEnvDuration("AUTOPOST_DELAY_MS", publisher.DefaultDelay),
		Logger:   logger,
	})

	healthChecker := monitoring.NewHealthChecker(serviceName, version.Version)
	healthChecker.AddCheck("generator", monitoring.GeneratorHealthCheck(llmConfig.Configured()))

	metricsCollector := monitoring.NewMetricsCollector(serviceName, version.Version, version.GitCommit)
	customMetrics := handlers.NewMetrics()
	for _, collector := range customMetrics.Collectors() {
		metricsCollector.RegisterCustomMetric(collector)
	}

	app := server.SetupServiceRouter(logger, serviceName, healthChecker, metricsCollector)
	app.Use(middleware.SessionMiddleware(config.GetEnvBool("SECURE_COOKIES", false)))

	h := handlers.New(handlers.Config{
		Generator:       generator,
		GeneratorSource: generatorSource,
		Store:           postStore,
		Registry:        registry,
		Publisher:       pub,
		Metrics:         customMetrics,
		Logger:          logger,
	})
	h.Register(app)

	serverConfig := server.DefaultConfig(serviceName, port)
	if err := server.Start(serverConfig, app, logger); err != nil {
		logger.Fatal(err.Error())
	}
}
