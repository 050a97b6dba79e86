// Package brand provides centralized naming constants for the probe.
//
// Everything that ends up in file paths, environment variables, log prefixes
// or metric names is derived from here so a deployment can be renamed in one
// place.
package brand

import (
	"os"
	"path/filepath"
)

const (
	// LowerName is used for log prefixes and metric namespaces.
	LowerName = "linkprobe"
	// BinaryName is the installed executable name.
	BinaryName = "linkprobe"
	// ConfigEnvPrefix prefixes every environment override.
	ConfigEnvPrefix = "LINKPROBE"
	// DefaultConfigDir is where packaged configuration lives.
	DefaultConfigDir = "/etc/linkprobe"
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "linkprobe.hcl"
)

// Version is set at build time via -ldflags
var Version = "dev"

// GetConfigPath returns the configuration file path, checking env vars first.
// Priority: LINKPROBE_CONFIG > LINKPROBE_CONFIG_DIR/linkprobe.hcl > default
func GetConfigPath() string {
	if path := os.Getenv(ConfigEnvPrefix + "_CONFIG"); path != "" {
		return path
	}
	if dir := os.Getenv(ConfigEnvPrefix + "_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, ConfigFileName)
	}
	return filepath.Join(DefaultConfigDir, ConfigFileName)
}
