package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"SCREENCAT_TEST_PORT" envDefault:"7070"`
}

func TestFromEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("port = %d, want 7070", cfg.Port)
	}
}

func TestFromEnvOverride(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SCREENCAT_TEST_PORT", "9000")

	if err := FromEnv(&cfg); err != nil {
		t.Fatalf("from env: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
}

func TestFromEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SCREENCAT_TEST_PORT", "not-an-int")

	err := FromEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
