package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"storybook/internal/adapter/repo"
	"storybook/internal/generator"
	"storybook/internal/http/handlers"
	"storybook/internal/http/httpapi"
	"storybook/internal/infra"
	"storybook/internal/pdf"
	"storybook/internal/providers/genai"
	"storybook/internal/template"
	"storybook/internal/tracker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := infra.RunMigrations(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	jobRepo := repo.NewJobRepository(dbpool)
	pageRepo := repo.NewPageRepository(dbpool)
	templateRepo := repo.NewTemplateRepository(dbpool)

	if err := template.SeedDefaults(ctx, templateRepo, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed built-in templates")
	}

	trk := tracker.New(jobRepo, pageRepo, logger)

	gemini, err := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		TextModel:  cfg.GeminiTextModel,
		ImageModel: cfg.GeminiImageModel,
		HTTPClient: &http.Client{Timeout: cfg.GenerateTimeout},
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build gemini client")
	}

	runner := generator.New(trk, gemini, logger, generator.WithStaleCutoff(cfg.StaleJobCutoff))
	runner.Start(ctx)

	app := &handlers.App{
		Tracker:   trk,
		Templates: templateRepo,
		Stories:   gemini,
		Queue:     runner,
		Assembler: pdf.NewBuilder(logger),
		Logger:    logger,
	}

	router := httpapi.NewRouter(app, logger, httpapi.Config{
		AllowedOrigins:  cfg.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimitPerMin,
	})
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Str("addr", server.Addr()).Msg("api listening")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
