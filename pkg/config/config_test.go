package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8090" {
		t.Errorf("Expected Port to be 8090, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Provider.Benchmark != "SPY" {
		t.Errorf("Expected benchmark to be SPY, got %s", cfg.Provider.Benchmark)
	}

	if cfg.Engine.DefaultPrecision != 4 {
		t.Errorf("Expected default precision to be 4, got %d", cfg.Engine.DefaultPrecision)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("ENGINE_DEFAULT_PRECISION", "2")
	os.Setenv("SCHEDULER_WATCHLIST", "aapl, msft ,")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("ENGINE_DEFAULT_PRECISION")
		os.Unsetenv("SCHEDULER_WATCHLIST")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Engine.DefaultPrecision != 2 {
		t.Errorf("Expected default precision to be 2, got %d", cfg.Engine.DefaultPrecision)
	}

	// Watchlist entries are trimmed and uppercased
	if len(cfg.Scheduler.Watchlist) != 2 {
		t.Fatalf("Expected 2 watchlist entries, got %d", len(cfg.Scheduler.Watchlist))
	}
	if cfg.Scheduler.Watchlist[0] != "AAPL" || cfg.Scheduler.Watchlist[1] != "MSFT" {
		t.Errorf("Unexpected watchlist: %v", cfg.Scheduler.Watchlist)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateInvalidPrecision(t *testing.T) {
	os.Setenv("ENGINE_DEFAULT_PRECISION", "3")
	defer os.Unsetenv("ENGINE_DEFAULT_PRECISION")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when precision is not 2, 4, 6 or 8, got nil")
	}
}

func TestValidateMinTTMQuarters(t *testing.T) {
	os.Setenv("ENGINE_MIN_TTM_QUARTERS", "2")
	defer os.Unsetenv("ENGINE_MIN_TTM_QUARTERS")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENGINE_MIN_TTM_QUARTERS is below 4, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "2h")
	defer os.Unsetenv("TEST_DURATION")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsFloat(t *testing.T) {
	os.Setenv("TEST_FLOAT", "0.045")
	defer os.Unsetenv("TEST_FLOAT")

	value := getEnvAsFloat("TEST_FLOAT", 0.0)
	if value != 0.045 {
		t.Errorf("Expected value to be 0.045, got %v", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	os.Setenv("TEST_BOOL", "true")
	defer os.Unsetenv("TEST_BOOL")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}
