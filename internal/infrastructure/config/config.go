package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for Octoflux.
// All configuration is loaded from YAML and can be overridden by environment variables.
type Config struct {
	Octopus  OctopusConfig  `yaml:"octopus"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
	Import   ImportConfig   `yaml:"import"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OctopusConfig contains Octopus Energy API credentials and connection settings.
type OctopusConfig struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	AccountID string `yaml:"account_id"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // HTTP client timeout in seconds
}

// InfluxDBConfig contains InfluxDB v2 connection settings.
type InfluxDBConfig struct {
	URL     string `yaml:"url"`
	Token   string `yaml:"token"`
	Org     string `yaml:"org"`
	Bucket  string `yaml:"bucket"`
	Timeout int    `yaml:"timeout"` // HTTP request timeout in seconds
}

// ImportConfig contains page sizes for the consumption and rate fetches.
// Each fetch requests a single page of this size; no follow-up pages are
// requested even when the API reports more records.
type ImportConfig struct {
	NumReadings          int `yaml:"num_readings"`
	UnitRatesNumReadings int `yaml:"unit_rates_num_readings"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads configuration from a YAML file and applies environment variable overrides.
//
// The configuration loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern: OCTOFLUX_SECTION_KEY
// For example: OCTOFLUX_OCTOPUS_PASSWORD, OCTOFLUX_INFLUXDB_TOKEN
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If file cannot be read, parsed, or validation fails
func Load(path string) (*Config, error) {
	// Start with defaults
	cfg := defaultConfig()

	// Read and parse YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
// Credentials and the InfluxDB target have no defaults; they must come
// from the file or the environment.
func defaultConfig() *Config {
	return &Config{
		Octopus: OctopusConfig{
			BaseURL: "https://api.octopus.energy",
			Timeout: 30,
		},
		InfluxDB: InfluxDBConfig{
			URL:     "http://localhost:8086",
			Timeout: 10,
		},
		Import: ImportConfig{
			NumReadings:          100,
			UnitRatesNumReadings: 100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
// Environment variables follow the pattern: OCTOFLUX_SECTION_KEY
func applyEnvOverrides(cfg *Config) {
	// Octopus credentials (secrets belong in the environment, not the file)
	if v := os.Getenv("OCTOFLUX_OCTOPUS_EMAIL"); v != "" {
		cfg.Octopus.Email = v
	}
	if v := os.Getenv("OCTOFLUX_OCTOPUS_PASSWORD"); v != "" {
		cfg.Octopus.Password = v
	}
	if v := os.Getenv("OCTOFLUX_OCTOPUS_ACCOUNT_ID"); v != "" {
		cfg.Octopus.AccountID = v
	}

	// InfluxDB
	if v := os.Getenv("OCTOFLUX_INFLUXDB_URL"); v != "" {
		cfg.InfluxDB.URL = v
	}
	if v := os.Getenv("OCTOFLUX_INFLUXDB_TOKEN"); v != "" {
		cfg.InfluxDB.Token = v
	}
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Octopus validation
	if c.Octopus.Email == "" {
		errs = append(errs, "octopus.email is required")
	}
	if c.Octopus.Password == "" {
		errs = append(errs, "octopus.password is required (set OCTOFLUX_OCTOPUS_PASSWORD environment variable)")
	}
	if c.Octopus.AccountID == "" {
		errs = append(errs, "octopus.account_id is required")
	}

	// InfluxDB validation
	if c.InfluxDB.URL == "" {
		errs = append(errs, "influxdb.url is required")
	}
	if c.InfluxDB.Token == "" {
		errs = append(errs, "influxdb.token is required (set OCTOFLUX_INFLUXDB_TOKEN environment variable)")
	}
	if c.InfluxDB.Org == "" {
		errs = append(errs, "influxdb.org is required")
	}
	if c.InfluxDB.Bucket == "" {
		errs = append(errs, "influxdb.bucket is required")
	}

	// Import validation
	if c.Import.NumReadings < 1 {
		errs = append(errs, "import.num_readings must be at least 1")
	}
	if c.Import.UnitRatesNumReadings < 1 {
		errs = append(errs, "import.unit_rates_num_readings must be at least 1")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}
