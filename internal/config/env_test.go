package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type envTestConfig struct {
	Trials int `env:"OTSIM_TEST_TRIALS" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Trials != 123 {
		t.Fatalf("expected default trials 123, got %d", cfg.Trials)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("OTSIM_TEST_TRIALS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "OTSIM_TEST_TRIALS=77\nOTSIM_TEST_DOTENV_ONLY=loaded\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("OTSIM_TEST_TRIALS", "5")
	t.Setenv("OTSIM_TEST_DOTENV_ONLY", "")
	os.Unsetenv("OTSIM_TEST_DOTENV_ONLY")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Trials != 5 {
		t.Fatalf("expected environment to win over .env, got %d", cfg.Trials)
	}
	if got := os.Getenv("OTSIM_TEST_DOTENV_ONLY"); got != "loaded" {
		t.Fatalf("expected value from .env, got %q", got)
	}
}
