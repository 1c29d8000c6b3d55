package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qbitforge/railqram/qram"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadBuildConfigTOMLDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, "build.toml", `
depth = 3
memory = [0, 1, 1, 0, 1, 0, 0, 1]
bandwidth = 2
record_syndrome = false
circuit_name = "lookup_d3"
`)

	cfg, err := loadBuildConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Depth != 3 {
		t.Fatalf("unexpected depth: %d", cfg.Depth)
	}
	if len(cfg.Memory) != 8 {
		t.Fatalf("unexpected memory length: %d", len(cfg.Memory))
	}
	if cfg.Bandwidth != 2 {
		t.Fatalf("unexpected bandwidth: %d", cfg.Bandwidth)
	}
	if cfg.RecordSyndrome {
		t.Fatalf("expected syndrome recording disabled")
	}
	// Untouched keys keep their defaults.
	if !cfg.PrepareQueryCell {
		t.Fatalf("expected prepare_query_cell default true")
	}
	if !cfg.EchoReadout {
		t.Fatalf("expected echo_readout default true")
	}
	if cfg.CircuitName != "lookup_d3" {
		t.Fatalf("unexpected circuit name: %q", cfg.CircuitName)
	}
}

func TestLoadBuildConfigYAMLAddressList(t *testing.T) {
	path := writeConfig(t, "build.yaml", `
addresses: ["00", "01", "10", "11"]
memory: [1, 0, 0, 1]
prepare_query_cell: false
`)

	cfg, err := loadBuildConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PrepareQueryCell {
		t.Fatalf("expected prepare_query_cell disabled")
	}
	depth, err := cfg.spec().TreeDepth()
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if depth != 2 {
		t.Fatalf("unexpected depth from address list: %d", depth)
	}
}

func TestLoadBuildConfigSpecPrecedence(t *testing.T) {
	// An address list wins over a bare depth.
	path := writeConfig(t, "build.toml", `
depth = 5
addresses = ["0", "1"]
memory = [1, 0]
`)
	cfg, err := loadBuildConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	depth, err := cfg.spec().TreeDepth()
	if err != nil {
		t.Fatalf("spec: %v", err)
	}
	if depth != 1 {
		t.Fatalf("address list should win, got depth %d", depth)
	}
}

func TestLoadBuildConfigErrors(t *testing.T) {
	if _, err := loadBuildConfig(writeConfig(t, "build.json", `{}`)); err == nil {
		t.Fatalf("expected unsupported extension error")
	}
	if _, err := loadBuildConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected missing file error")
	}
	if _, err := loadBuildConfig(writeConfig(t, "build.toml", `depth = "two"`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestBuildConfigFeedsQRAM(t *testing.T) {
	path := writeConfig(t, "build.yml", `
depth: 2
memory: [0, 0, 1, 1]
`)
	cfg, err := loadBuildConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	q, err := qram.New(cfg.spec(), cfg.Memory, qram.Options{
		Bandwidth:        cfg.Bandwidth,
		RecordSyndrome:   cfg.RecordSyndrome,
		PrepareQueryCell: cfg.PrepareQueryCell,
	})
	if err != nil {
		t.Fatalf("new qram: %v", err)
	}
	if q.Depth() != 2 {
		t.Fatalf("unexpected depth: %d", q.Depth())
	}
}
