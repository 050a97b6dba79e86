package cmd

import (
	"grimm.is/linkprobe/internal/brand"
	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/discovery"
	"grimm.is/linkprobe/internal/i18n"
	"grimm.is/linkprobe/internal/metrics"
)

// RunDiscover prints the discovery document for the configured links.
//
// An unreadable configuration is a hard failure: an empty document would make
// the monitoring server drop every discovered link.
func RunDiscover(env *Env) int {
	result, err := config.Load(env.ConfigPath)
	if err != nil {
		env.printer().Fprintf(env.Stderr, i18n.MsgConfigError, brand.BinaryName, err)
		return 1
	}
	cfg := result.Config

	logger, closeLogs := setupLogger(cfg.Logging, env.Stderr)
	defer closeLogs()
	logger = logger.WithComponent("discover")

	if result.FromDefaults {
		logger.Debug("no configuration file, using built-in links", "path", env.ConfigPath)
	}

	doc := discovery.Discover(cfg.Links)
	if err := doc.Write(env.Stdout); err != nil {
		env.printer().Fprintf(env.Stderr, i18n.MsgWriteError, brand.BinaryName, err)
		return 1
	}
	logger.Info("discovery emitted", "links", len(doc.Data), "config", result.Path)

	if dir := cfg.Metrics.TextfileDir; dir != "" {
		reg := metrics.New()
		reg.SetLinksDiscovered(len(doc.Data))
		if path, err := reg.WriteTextfile(dir, metrics.DiscoveryFile); err != nil {
			logger.Warn("metrics textfile not written", "path", path, "error", err)
		}
	}

	return 0
}
