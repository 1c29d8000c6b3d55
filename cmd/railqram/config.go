package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/qbitforge/railqram/qram"
)

// buildConfig is the resolved build description: defaults overlaid with
// whatever keys the config file defines.
type buildConfig struct {
	Depth            int
	Addresses        []string
	Memory           []int
	Bandwidth        int
	RecordSyndrome   bool
	PrepareQueryCell bool
	EchoReadout      bool
	CircuitName      string
}

func defaultBuildConfig() buildConfig {
	return buildConfig{
		Bandwidth:        1,
		RecordSyndrome:   true,
		PrepareQueryCell: true,
		EchoReadout:      true,
		CircuitName:      "railqram",
	}
}

// spec returns the address specification the file describes: an explicit
// address list wins over a bare depth.
func (c buildConfig) spec() qram.AddressSpec {
	if len(c.Addresses) > 0 {
		return qram.AddressList(c.Addresses)
	}
	return qram.Depth(c.Depth)
}

// fileConfig is the raw config file shape; pointer fields distinguish
// "absent" from zero for the YAML path.
type fileConfig struct {
	Depth            *int     `toml:"depth" yaml:"depth"`
	Addresses        []string `toml:"addresses" yaml:"addresses"`
	Memory           []int    `toml:"memory" yaml:"memory"`
	Bandwidth        *int     `toml:"bandwidth" yaml:"bandwidth"`
	RecordSyndrome   *bool    `toml:"record_syndrome" yaml:"record_syndrome"`
	PrepareQueryCell *bool    `toml:"prepare_query_cell" yaml:"prepare_query_cell"`
	EchoReadout      *bool    `toml:"echo_readout" yaml:"echo_readout"`
	CircuitName      *string  `toml:"circuit_name" yaml:"circuit_name"`
}

// loadBuildConfig reads a TOML or YAML build description, selected by file
// extension, and overlays it on the defaults.
func loadBuildConfig(path string) (buildConfig, error) {
	var raw fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.DecodeFile(path, &raw); err != nil {
			return buildConfig{}, fmt.Errorf("load build config: %w", err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return buildConfig{}, fmt.Errorf("load build config: %w", err)
		}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return buildConfig{}, fmt.Errorf("load build config: %w", err)
		}
	default:
		return buildConfig{}, fmt.Errorf("load build config: unsupported extension %q (expected .toml, .yaml or .yml)", ext)
	}

	cfg := defaultBuildConfig()
	if raw.Depth != nil {
		cfg.Depth = *raw.Depth
	}
	cfg.Addresses = raw.Addresses
	cfg.Memory = raw.Memory
	if raw.Bandwidth != nil {
		cfg.Bandwidth = *raw.Bandwidth
	}
	if raw.RecordSyndrome != nil {
		cfg.RecordSyndrome = *raw.RecordSyndrome
	}
	if raw.PrepareQueryCell != nil {
		cfg.PrepareQueryCell = *raw.PrepareQueryCell
	}
	if raw.EchoReadout != nil {
		cfg.EchoReadout = *raw.EchoReadout
	}
	if raw.CircuitName != nil {
		name := strings.TrimSpace(*raw.CircuitName)
		if name != "" {
			cfg.CircuitName = name
		}
	}
	return cfg, nil
}
