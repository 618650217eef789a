// Octoflux - Octopus Energy to InfluxDB importer
//
// This is the main entry point for the octoflux application. One run
// authenticates against the Octopus Energy API, walks the account's
// properties and meters, fetches the most recent page of consumption
// readings and standard unit rates, writes everything to InfluxDB and
// exits. Schedule it (cron, systemd timer) for continuous collection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/octoflux/internal/importer"
	"github.com/nerrad567/octoflux/internal/infrastructure/config"
	"github.com/nerrad567/octoflux/internal/infrastructure/influxdb"
	"github.com/nerrad567/octoflux/internal/infrastructure/logging"
	"github.com/nerrad567/octoflux/internal/octopus"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Create a context that cancels on interrupt signals (Ctrl+C, SIGTERM)
	// so a half-finished run can be abandoned cleanly
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
//
// Parameters:
//   - ctx: Context for cancellation and shutdown signals
//
// Returns:
//   - error: nil when the import pass completes, or error describing failure
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting octoflux",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	// Load configuration
	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Connect to InfluxDB
	influxClient, err := influxdb.Connect(ctx, cfg.InfluxDB)
	if err != nil {
		return fmt.Errorf("connecting to InfluxDB: %w", err)
	}
	defer func() {
		log.Info("closing InfluxDB connection")
		if closeErr := influxClient.Close(); closeErr != nil {
			log.Error("error closing InfluxDB", "error", closeErr)
		}
	}()
	log.Info("InfluxDB connected",
		"url", cfg.InfluxDB.URL,
		"org", cfg.InfluxDB.Org,
		"bucket", cfg.InfluxDB.Bucket,
	)

	// Run the import pass
	api := octopus.New(cfg.Octopus)

	imp := importer.New(api, influxClient, log.With("component", "importer"), importer.Config{
		Email:                cfg.Octopus.Email,
		Password:             cfg.Octopus.Password,
		AccountID:            cfg.Octopus.AccountID,
		NumReadings:          cfg.Import.NumReadings,
		UnitRatesNumReadings: cfg.Import.UnitRatesNumReadings,
	})

	if err := imp.Run(ctx); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	log.Info("import complete")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses OCTOFLUX_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("OCTOFLUX_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}
