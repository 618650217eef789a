package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestRun_InvalidConfig verifies run fails with invalid config path.
func TestRun_InvalidConfig(t *testing.T) {
	originalEnv := os.Getenv("OCTOFLUX_CONFIG")
	defer os.Setenv("OCTOFLUX_CONFIG", originalEnv)

	os.Setenv("OCTOFLUX_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
}

// TestRun_MissingCredentials verifies run fails config validation.
func TestRun_MissingCredentials(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
octopus:
  email: ""
  password: ""
  account_id: ""

influxdb:
  url: "http://127.0.0.1:8086"
  token: "test-token"
  org: "home"
  bucket: "energy"

logging:
  level: info
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalEnv := os.Getenv("OCTOFLUX_CONFIG")
	defer os.Setenv("OCTOFLUX_CONFIG", originalEnv)
	os.Setenv("OCTOFLUX_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail with missing credentials")
	}
}

// TestRun_InfluxDBUnreachable verifies run fails when InfluxDB is down.
func TestRun_InfluxDBUnreachable(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.yaml")

	configContent := `
octopus:
  email: "user@example.com"
  password: "hunter2"
  account_id: "A-12AB34CD"

influxdb:
  url: "http://127.0.0.1:59999"
  token: "test-token"
  org: "home"
  bucket: "energy"
  timeout: 1

logging:
  level: info
  format: text
  output: stdout
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	originalEnv := os.Getenv("OCTOFLUX_CONFIG")
	defer os.Setenv("OCTOFLUX_CONFIG", originalEnv)
	os.Setenv("OCTOFLUX_CONFIG", configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail when InfluxDB is unreachable")
	}
}

// TestGetConfigPath_Default verifies default config path.
func TestGetConfigPath_Default(t *testing.T) {
	originalEnv := os.Getenv("OCTOFLUX_CONFIG")
	defer os.Setenv("OCTOFLUX_CONFIG", originalEnv)

	os.Unsetenv("OCTOFLUX_CONFIG")

	path := getConfigPath()
	if path != defaultConfigPath {
		t.Errorf("getConfigPath() = %q, want %q", path, defaultConfigPath)
	}
}

// TestGetConfigPath_EnvOverride verifies environment variable override.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	originalEnv := os.Getenv("OCTOFLUX_CONFIG")
	defer os.Setenv("OCTOFLUX_CONFIG", originalEnv)

	expected := "/custom/path/config.yaml"
	os.Setenv("OCTOFLUX_CONFIG", expected)

	path := getConfigPath()
	if path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}
