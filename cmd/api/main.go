package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"server/internal/http/handlers"
	"server/internal/http/httpapi"
	"server/internal/infra"
	"server/internal/providers/gemini"
	"server/internal/providers/image"
	"server/internal/providers/translate"
	"server/internal/workflow"
)

func main() {
	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	client, err := gemini.NewClient(ctx, gemini.Options{
		APIKey:          cfg.GeminiAPIKey,
		TextModel:       cfg.GeminiTextModel,
		ImageModel:      cfg.GeminiImageModel,
		MultimodalModel: cfg.GeminiMultimodalModel,
		Logger:          logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create gemini client")
	}

	translator := translate.NewGemini(client, cfg.TranslateTarget, logger)
	generator := image.NewGeminiGenerator(client)
	service := workflow.NewService(translator, generator, logger)
	panels := workflow.NewStore(cfg.PanelTTL)

	app := handlers.NewApp(panels, service, logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	// Idle panels hold decoded uploads; prune them on a fixed cadence.
	pruneCtx, stopPrune := context.WithCancel(ctx)
	defer stopPrune()
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-pruneCtx.Done():
				return
			case <-ticker.C:
				if removed := panels.PruneExpired(); removed > 0 {
					logger.Info().Int("removed", removed).Msg("pruned expired panels")
				}
			}
		}
	}()

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
