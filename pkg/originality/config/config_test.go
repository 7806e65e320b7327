package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/originality/pkg/originality/internalerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "originality.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadWeights(t *testing.T) {
	path := writeConfig(t, "weights:\n  entropy: 0.7\n  diversity: 0.3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Weights["entropy"] != 0.7 || cfg.Weights["diversity"] != 0.3 {
		t.Errorf("Weights = %v, want entropy 0.7 diversity 0.3", cfg.Weights)
	}
}

func TestLoadNoWeightsSection(t *testing.T) {
	path := writeConfig(t, "# no weights configured\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.Weights) != 0 {
		t.Errorf("Expected no weights, got %v", cfg.Weights)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "weights: [not a map\n")

	if _, err := Load(path); err == nil {
		t.Error("Load should fail for malformed YAML")
	}
}

func TestLoadNegativeWeight(t *testing.T) {
	path := writeConfig(t, "weights:\n  entropy: -1\n")

	_, err := Load(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for negative weight, got %v", err)
	}
}

func TestLoadZeroWeightsAllowed(t *testing.T) {
	path := writeConfig(t, "weights:\n  entropy: 0\n  diversity: 0\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Zero weights should load without error, got %v", err)
	}
	if len(cfg.Weights) != 2 {
		t.Errorf("Weights = %v, want both zero entries", cfg.Weights)
	}
}
