package config

import (
	"os"
	"path/filepath"
	"testing"
)

// writeConfigFile writes a temp YAML config for tests
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "netspect.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Nodes != 50 {
		t.Errorf("Nodes = %d, want 50", cfg.Nodes)
	}
	if cfg.EdgeProbability != 0.08 {
		t.Errorf("EdgeProbability = %f, want 0.08", cfg.EdgeProbability)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config failed validation: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, "nodes: 100\nedge_probability: 0.2\nseed: 7\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Nodes != 100 {
		t.Errorf("Nodes = %d, want 100", cfg.Nodes)
	}
	if cfg.EdgeProbability != 0.2 {
		t.Errorf("EdgeProbability = %f, want 0.2", cfg.EdgeProbability)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	// Untouched fields keep their defaults
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want default 5", cfg.TopK)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Error("Expected error for missing config file")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "nodes: [not a number\n")

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestValidate_BadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5} {
		cfg := Default()
		cfg.EdgeProbability = p

		if err := cfg.Validate(); err == nil {
			t.Errorf("p=%f: expected validation error", p)
		}
	}
}

func TestValidate_BadNodes(t *testing.T) {
	cfg := Default()
	cfg.Nodes = 0

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for zero nodes")
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("Expected validation error for unknown log level")
	}
}
