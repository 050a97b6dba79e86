package cmd

import (
	"context"
	"fmt"

	"grimm.is/linkprobe/internal/checker"
	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/metrics"
)

// RunCheck prints the verdict for iface. The polled check path always exits
// 0 with a verdict on stdout; every failure is logged and reads as DOWN.
func RunCheck(ctx context.Context, env *Env, iface string) int {
	result, err := config.Load(env.ConfigPath)
	if err != nil {
		bootstrapLogger(env.Stderr).Error("configuration error", "path", env.ConfigPath, "error", err)
		return printVerdict(env, checker.Down)
	}
	cfg := result.Config

	logger, closeLogs := setupLogger(cfg.Logging, env.Stderr)
	defer closeLogs()

	if env.NewProber == nil {
		logger.Error("no prober configured")
		return printVerdict(env, checker.Down)
	}
	prober, err := env.NewProber(cfg.Probe, logger.WithComponent("probe"))
	if err != nil {
		logger.Error("prober unavailable", "method", cfg.Probe.Method, "error", err)
		return printVerdict(env, checker.Down)
	}

	var reg *metrics.Registry
	if cfg.Metrics.TextfileDir != "" {
		reg = metrics.New()
	}

	opts := []checker.Option{
		checker.WithMetrics(reg),
		checker.WithClock(env.now),
	}
	if env.Inspector != nil {
		opts = append(opts, checker.WithInspector(env.Inspector))
	}

	report := checker.New(prober, cfg.Probe, logger, opts...).Run(ctx, iface)
	code := printVerdict(env, report.Verdict)

	if reg != nil && report.Rejected == nil {
		if path, err := reg.WriteTextfile(cfg.Metrics.TextfileDir, metrics.CheckFile(iface)); err != nil {
			logger.Warn("metrics textfile not written", "path", path, "error", err)
		}
	}
	return code
}

func printVerdict(env *Env, v checker.Verdict) int {
	// A closed stdout cannot be reported anywhere useful.
	fmt.Fprintln(env.Stdout, v.String())
	return 0
}
