package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qdense.yaml")
	yaml := `max_qubits: 8
bench:
  qubits: 6
  parallel: 3
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MaxQubits != 8 || cfg.Bench.Qubits != 6 || cfg.Bench.Parallel != 3 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	// Unset keys keep their defaults.
	if cfg.Bench.Repeats != 10 || cfg.Tolerance != 1e-9 || cfg.TUI.Qubits != 3 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("LoadConfig(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "max_qubits: [", "parse"},
		{"zero qubits", "max_qubits: 0", "max_qubits"},
		{"bench above cap", "max_qubits: 4\nbench:\n  qubits: 5", "bench.qubits"},
		{"negative tolerance", "tolerance: -1", "tolerance"},
		{"zero repeats", "bench:\n  repeats: 0", "bench.repeats"},
	}

	for _, tt := range tests {
		path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
		if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadConfig(path)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
