// Command seed runs the schema migrations and inserts the built-in book
// templates, then exits. Useful for provisioning a fresh database without
// starting the API.
package main

import (
	"context"

	"github.com/joho/godotenv"

	"storybook/internal/adapter/repo"
	"storybook/internal/infra"
	"storybook/internal/template"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	if err := infra.RunMigrations(ctx, dbpool); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}
	if err := template.SeedDefaults(ctx, repo.NewTemplateRepository(dbpool), logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed templates")
	}
	logger.Info().Msg("database seeded")
}
