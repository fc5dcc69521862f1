package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ontrackhk/ontrack/internal/config"
	"github.com/ontrackhk/ontrack/internal/dataset"
	"github.com/ontrackhk/ontrack/internal/db"
	"github.com/ontrackhk/ontrack/internal/llm"
	"github.com/ontrackhk/ontrack/internal/narrative"
	"github.com/ontrackhk/ontrack/internal/repository"
	"github.com/ontrackhk/ontrack/internal/server"
	"github.com/ontrackhk/ontrack/internal/session"
	"github.com/ontrackhk/ontrack/internal/survey"
)

func newServeCmd() *cobra.Command {
	var (
		addr    string
		dataDir string
		dbPath  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the survey HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}
			if dataDir != "" {
				cfg.DataDir = dataDir
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			return runServer(cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides ONTRACK_ADDR)")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "dataset directory (overrides ONTRACK_DATA_DIR)")
	cmd.Flags().StringVar(&dbPath, "db", "", "profile database path (overrides ONTRACK_DB)")
	return cmd
}

func runServer(cfg config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	store, err := dataset.Load(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading datasets: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	profileRepo := repository.NewSQLiteProfileRepo(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	generator := llm.NewOpenAIClient(llmCfg, observer)

	svc := survey.NewService(
		store,
		session.NewTracker(),
		profileRepo,
		narrative.NewService(generator),
		survey.NewLogUseCaseObserver(os.Stderr),
	)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           server.New(svc, logger, cfg.AllowedOrigins).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr, "data_dir", cfg.DataDir)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return httpServer.Shutdown(shutdownCtx)
	}
}
