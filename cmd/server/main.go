// @title         devadvisor API
// @version       1.0
// @description   Cross-platform developer activity analysis with ranked learning and practice recommendations.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/devadvisor/docs"

	// internal imports
	httpapi "github.com/artem13815/devadvisor/api/http"
	"github.com/artem13815/devadvisor/api/http/handlers"
	"github.com/artem13815/devadvisor/pkg/activity"
	"github.com/artem13815/devadvisor/pkg/analysis"
	"github.com/artem13815/devadvisor/pkg/config"
	"github.com/artem13815/devadvisor/pkg/health"
	healthpg "github.com/artem13815/devadvisor/pkg/health/checkers"
	"github.com/artem13815/devadvisor/pkg/llm"
	"github.com/artem13815/devadvisor/pkg/llm/openrouter"
	"github.com/artem13815/devadvisor/pkg/platform/codeforces"
	"github.com/artem13815/devadvisor/pkg/platform/github"
	"github.com/artem13815/devadvisor/pkg/recommend"
	pgrepo "github.com/artem13815/devadvisor/pkg/repository/postgres"
	"github.com/artem13815/devadvisor/pkg/storage/postgres"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env
	cfg := config.Load()

	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins}))

	// History storage is optional: without DATABASE_URL every request runs
	// stateless and nothing is persisted.
	var analysisRepo analysis.Repository
	var checkers []health.Checker
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("postgres connect: %v", err)
		}
		defer pool.Close()
		repo, err := pgrepo.NewAnalysisRepository(pool)
		if err != nil {
			log.Fatalf("init analysis repo: %v", err)
		}
		analysisRepo = repo
		checkers = append(checkers, healthpg.NewPostgresChecker(pool))
	}

	// Reasoning provider is optional; without a key the rule table runs alone.
	var chat llm.ChatModel
	if cfg.OpenRouterAPIKey != "" {
		chat = openrouter.New(
			cfg.OpenRouterAPIKey,
			cfg.OpenRouterBase,
			cfg.OpenRouterModel,
			cfg.OpenRouterAppTitle,
			cfg.OpenRouterReferer,
		)
	}

	// Wire dependencies (Clean Architecture)
	aggregator := activity.NewAggregator(
		github.New(cfg.GitHubAPIBase, cfg.GitHubToken),
		nil, // LeetCode integration pending; requested handles get the pending snapshot
		codeforces.New(cfg.CodeforcesAPIBase),
		time.Duration(cfg.FetchTimeoutSeconds)*time.Second,
	)
	synthesizer := recommend.NewSynthesizer(chat, cfg.MaxRecommendations, time.Duration(cfg.LLMTimeoutSeconds)*time.Second)
	analysisUC := analysis.NewService(aggregator, synthesizer, analysisRepo)

	profileHandler := handlers.NewProfileHandler(analysisUC)
	analysesHandler := handlers.NewAnalysesHandler(analysisUC)
	healthHandler := handlers.NewHealthHandler(health.NewService(checkers...))

	// Register routes
	httpapi.Register(app, profileHandler, analysesHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
