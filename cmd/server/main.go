package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docsift/docsift/internal/ai"
	"github.com/docsift/docsift/internal/api"
	"github.com/docsift/docsift/internal/classify"
	"github.com/docsift/docsift/internal/config"
	"github.com/docsift/docsift/internal/extract"
	"github.com/docsift/docsift/internal/pipeline"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize the model client and the classifier.
	aiClient := ai.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)

	classifier := classify.New(classify.Config{
		PureReferenceCutoff:   cfg.PureReferenceCutoff,
		MinMixedExtractChars:  cfg.MinMixedExtractChars,
		MinPrefixChars:        cfg.MinPrefixChars,
		StrongPrefixChars:     cfg.StrongPrefixChars,
		MinSubstantiveChars:   cfg.MinSubstantiveChars,
		MinIndicatorMatches:   cfg.MinIndicatorMatches,
		LongTextFallbackChars: cfg.LongTextFallbackChars,
	})
	if cfg.LanguagePackPath != "" {
		pack, err := classify.LoadLanguagePack(cfg.LanguagePackPath)
		if err != nil {
			log.Error("invalid language pack", "path", cfg.LanguagePackPath, "error", err)
			os.Exit(1)
		}
		if err := classifier.AddPack(pack); err != nil {
			log.Error("invalid language pack patterns", "path", cfg.LanguagePackPath, "error", err)
			os.Exit(1)
		}
		log.Info("language pack loaded", "language", pack.Language)
	}

	// Initialize the pipeline.
	store := pipeline.NewMemoryStore(cfg.ResultTTL)
	go store.Janitor(ctx, 5*time.Minute)

	orch := pipeline.NewOrchestrator(pipeline.Config{
		MaxPages:        cfg.MaxPages,
		ExtractTimeout:  cfg.ExtractTimeout,
		MinAnalyzeChars: cfg.MinMixedExtractChars,
	}, extract.PDFExtractor{}, classifier, aiClient, store, log)

	// Initialize the HTTP server.
	srv := api.NewServer(orch, aiClient, log, cfg)

	httpServer := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     srv,
		ReadTimeout: 30 * time.Second,
		// No write timeout: /process streams for as long as a document
		// takes to analyze.
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		aiClient.Close()
	}()

	log.Info("starting docsift", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
