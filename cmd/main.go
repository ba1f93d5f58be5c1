package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pathguard/collision-engine/internal/config"
	"github.com/pathguard/collision-engine/internal/decision"
	"github.com/pathguard/collision-engine/internal/engine"
	v1 "github.com/pathguard/collision-engine/internal/handler/http/v1"
	"github.com/pathguard/collision-engine/internal/ingest"
	"github.com/pathguard/collision-engine/internal/publisher"
	"github.com/pathguard/collision-engine/internal/registry"
	"github.com/pathguard/collision-engine/internal/service"
	"github.com/pathguard/collision-engine/internal/store"
	"github.com/pathguard/collision-engine/internal/vehicle"
	"github.com/pathguard/collision-engine/internal/zonewatch"
	"github.com/pathguard/collision-engine/pkg/logger"
	"github.com/pathguard/collision-engine/pkg/postgres"
	redisclient "github.com/pathguard/collision-engine/pkg/redis"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "collision-engine",
		Short: "Real-time proximity and collision decision engine for warehouse vehicles",
	}

	rootCmd.AddCommand(engineCmd())
	rootCmd.AddCommand(vehicleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// engineCmd runs the central evaluation engine: position ingestion,
// per-tick risk evaluation, command publishing, and the config API.
func engineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engine",
		Short: "Run the central collision decision engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL environment variable is required")
			}
			if err := runMigrations(cfg, log); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			dbpool, err := postgres.NewPostgresDB(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
			}
			defer dbpool.Close()
			log.Info("Successfully connected to PostgreSQL")

			redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
			if err != nil {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}
			defer redisClient.Close()
			log.Info("Successfully connected to Redis")

			// The registry resolves zone membership through the config
			// service, and the config service checks known vehicles
			// through the registry; the closure breaks the cycle.
			var configService service.ConfigService
			reg := registry.New(cfg.LivenessWindow, cfg.PositionJitterMeters, func(p r2.Vec) []string {
				if configService == nil {
					return nil
				}
				return configService.ZonesAt(p)
			}, log)

			configStore := store.NewConfigStore(dbpool)
			configService = service.NewConfigService(configStore, reg, log, cfg)
			if err := configService.Reload(ctx); err != nil {
				log.WithError(err).Warn("Initial config load failed, starting with defaults")
			}
			configService.Start(ctx)

			decisions := decision.New(cfg.DebounceTicks, log)
			monitor := zonewatch.New(cfg.LookaheadHorizon, log)
			pub := publisher.NewRedisCommandPublisher(redisClient)

			eng := engine.New(reg, configService, decisions, monitor, pub, cfg.TickInterval, log)
			go eng.Run(ctx)

			consumer := ingest.NewConsumer(redisClient, reg, log)
			consumer.Start(ctx)

			handler := v1.NewHandler(configService, reg, eng, monitor, log, cfg)
			router := gin.Default()
			api := router.Group("/api/v1")
			handler.RegisterRoutes(api)

			srv := &http.Server{
				Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
				Handler: router,
			}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Error starting HTTP server: %v", err)
				}
			}()
			log.Infof("HTTP server started on port %s", cfg.HTTPPort)

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit
			log.Info("Received shutdown signal, shutting down engine...")
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Info("Engine gracefully stopped")
			return nil
		},
	}
}

// vehicleCmd runs the vehicle-side brake agent.
func vehicleCmd() *cobra.Command {
	var vehicleID string

	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Run the vehicle-side brake controller agent",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.New(cfg.LogLevel)

			if vehicleID == "" {
				vehicleID = cfg.VehicleID
			}
			if vehicleID == "" {
				return fmt.Errorf("vehicle id is required (--id flag or VEHICLE_ID)")
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
			if err != nil {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}
			defer redisClient.Close()

			actuator := &vehicle.LogActuator{VehicleID: vehicleID, Logger: log}
			controller := vehicle.NewController(actuator, cfg.FailsafeTimeout, time.Now(), log)
			agent := vehicle.NewAgent(vehicleID, redisClient, controller, cfg.WatchdogTick, log)

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				<-quit
				log.Info("Received shutdown signal, stopping vehicle agent...")
				cancel()
			}()

			if err := agent.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&vehicleID, "id", "", "Vehicle ID this agent controls")
	return cmd
}

// runMigrations applies pending SQL migrations before the engine starts.
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}
