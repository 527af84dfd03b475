package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/chat"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/config"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/dispatch"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/llm"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/logging"
	"github.com/RiggedToEncodeINFO3604Project/RAG-Server/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "rag-server",
		Short:        "SkeduleIt support assistant API server",
		Long:         "Stateless long-context RAG gateway for the SkeduleIt support assistant.",
		SilenceUsage: true,
		RunE:         run,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.NewComponentLogger("Main")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Debug {
		logging.SetLevel(logging.DEBUG)
	}

	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := llm.NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create provider client: %w", err)
	}

	logger.Info("=== Server Configuration ===")
	logger.Info("Model: %s", client.Model())
	logger.Info("Approach: long-context, stateless, queued")
	logger.Info("CORS Origins: %v", cfg.AllowedOrigins)
	logger.Info("Retry policy: %d retries, base delay %v", cfg.MaxRetries, cfg.BaseDelay)
	logger.Info("Port: %s", cfg.Port)
	logger.Info("===========================")

	dispatcher := dispatch.New(client, dispatch.Config{
		MaxRetries: cfg.MaxRetries,
		BaseDelay:  cfg.BaseDelay,
	}, logging.NewComponentLogger("Dispatch"))

	service := chat.NewService(dispatcher, logging.NewComponentLogger("Chat"))
	srv := server.New(cfg, service, client.Model(), logging.NewComponentLogger("HTTP"))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Start)
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped")
	return nil
}
