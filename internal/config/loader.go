package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v2"
)

// LoadResult contains the loaded config and metadata about the load
type LoadResult struct {
	Config *Config
	Path   string
	// FromDefaults is set when no file existed and the built-in
	// reference configuration was used instead.
	FromDefaults bool
}

// Load reads the configuration at path. A missing file falls back to
// DefaultConfig; any other read, parse or validation problem is an error.
func Load(path string) (*LoadResult, error) {
	if path == "" {
		return &LoadResult{Config: DefaultConfig(), FromDefaults: true}, nil
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &LoadResult{Config: DefaultConfig(), Path: path, FromDefaults: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &LoadResult{Config: cfg, Path: path}, nil
}

// LoadFile loads a config file (HCL, JSON or YAML), applies defaults and validates it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg *Config
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".hcl":
		cfg, err = ParseHCL(data, path)
	case ".json":
		cfg, err = ParseJSON(data)
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	default:
		// Try HCL first, fall back to JSON; report both when neither fits.
		var hclErr error
		cfg, hclErr = ParseHCL(data, path)
		if hclErr != nil {
			var jsonErr error
			cfg, jsonErr = ParseJSON(data)
			if jsonErr != nil {
				err = errors.Join(hclErr, jsonErr)
			}
		}
	}
	if err != nil {
		return nil, err
	}

	return finalize(cfg)
}

// LoadHCL loads config from HCL bytes
func LoadHCL(data []byte, filename string) (*Config, error) {
	cfg, err := ParseHCL(data, filename)
	if err != nil {
		return nil, err
	}
	return finalize(cfg)
}

// LoadJSON loads config from JSON bytes
func LoadJSON(data []byte) (*Config, error) {
	cfg, err := ParseJSON(data)
	if err != nil {
		return nil, err
	}
	return finalize(cfg)
}

// LoadYAML loads config from YAML bytes
func LoadYAML(data []byte) (*Config, error) {
	cfg, err := ParseYAML(data)
	if err != nil {
		return nil, err
	}
	return finalize(cfg)
}

// ParseHCL decodes HCL without applying defaults or validating.
func ParseHCL(data []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse error: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL decode error: %s", diags.Error())
	}
	return &cfg, nil
}

// ParseJSON decodes JSON without applying defaults or validating.
// Unknown keys are rejected, as for YAML and HCL.
func ParseJSON(data []byte) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return &cfg, nil
}

// ParseYAML decodes YAML without applying defaults or validating.
// Unknown keys are rejected so a typo does not silently fall back to a default.
func ParseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	return &cfg, nil
}

func finalize(cfg *Config) (*Config, error) {
	cfg.ApplyDefaults()
	if errs := cfg.Validate(); errs.HasErrors() {
		return nil, fmt.Errorf("invalid configuration: %w", errs)
	}
	return cfg, nil
}
