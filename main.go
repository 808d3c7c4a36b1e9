package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/api"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/api/handlers"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/assets"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/auth"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/config"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/database"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/logger"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/metrics"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/monitoring"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/repositories"
	"github.com/MatiasBorsatto/jugadores-fifa-xacademy/internal/services"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd creates the fifa-api command. Run without a subcommand it
// serves the HTTP API.
func NewRootCmd() *cobra.Command {
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:           "fifa-api",
		Short:         "FIFA players REST API",
		Long:          `Serves the FIFA players API: registration, login and token protected player CRUD.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := logger.Init(loaded.LogLevel, loaded.LogPretty); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	flagErr := config.RegisterFlags(cmd.PersistentFlags())
	if flagErr != nil {
		// Surface bad environment defaults before anything runs.
		cmd.PersistentPreRunE = func(*cobra.Command, []string) error {
			return fmt.Errorf("invalid environment: %w", flagErr)
		}
	}

	cmd.AddCommand(NewMigrateCmd(func() *config.Config { return cfg }))
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	health := database.NewHealth()
	registry := metrics.NewRegistry()
	apiMetrics := metrics.NewMetrics(registry, health)

	// Observability first, so readiness reports the connecting state.
	if cfg.MetricsAddr != "" {
		obs := metrics.NewServer(cfg.MetricsAddr, registry, func(ctx context.Context) bool {
			return health.Check(ctx) == database.StateUp
		})
		if _, err := obs.Start(); err != nil {
			return fmt.Errorf("failed to start observability server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := obs.Stop(stopCtx); err != nil {
				log.Error().Err(err).Msg("Observability server forced to shutdown")
			}
		}()
	}

	// Set up database
	db, err := database.Connect(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN, cfg.Retry(), health)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	// Set up and run the background health probe
	probe, err := monitoring.NewHealthProbe(health, cfg.HealthSchedule)
	if err != nil {
		return err
	}
	probe.Run()
	defer probe.Stop()

	// Set up services
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}
	authService := services.NewAuthService(repositories.NewUserRepository(db), tokens, cfg.BcryptCost)
	playerService := services.NewPlayerService(repositories.NewPlayerRepository(db), cfg.DefaultPageSize, cfg.MaxPageSize)

	// Set up router
	router := api.NewRouter(api.Options{
		AuthService:   authService,
		PlayerService: playerService,
		ImageHandler:  handlers.NewImageHandler(cfg.ProxyTimeout, assets.DefaultPlayerImage),
		Metrics:       apiMetrics,
		CORSOrigins:   cfg.CORSOrigins,
	})

	// Set up server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("driver", cfg.DatabaseDriver).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("Server exiting")
	return nil
}
