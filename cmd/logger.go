package cmd

import (
	"fmt"
	"io"
	"os"

	"grimm.is/linkprobe/internal/brand"
	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/logging"
)

// setupLogger builds the process logger from the logging block. Problems with
// optional sinks are reported through the logger itself and never fail a mode.
// The returned closer releases file and syslog handles.
func setupLogger(cfg *config.Logging, stderr io.Writer) (*logging.Logger, func()) {
	logCfg := logging.DefaultConfig()
	logCfg.Output = stderr

	var (
		problems []string
		closers  []io.Closer
	)

	if cfg == nil {
		cfg = &config.Logging{}
	}

	if cfg.Level != "" {
		level, err := logging.ParseLevel(cfg.Level)
		if err != nil {
			problems = append(problems, err.Error())
		} else {
			logCfg.Level = level
		}
	}
	logCfg.JSON = cfg.JSON

	var writers []io.Writer
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			problems = append(problems, fmt.Sprintf("log file unavailable, using stderr: %v", err))
			writers = append(writers, stderr)
		} else {
			writers = append(writers, f)
			closers = append(closers, f)
		}
	} else {
		writers = append(writers, stderr)
	}

	if cfg.Syslog != nil && cfg.Syslog.Host != "" {
		sw, err := logging.NewSyslogWriter(syslogConfig(cfg.Syslog))
		if err != nil {
			problems = append(problems, fmt.Sprintf("syslog unavailable: %v", err))
		} else {
			writers = append(writers, sw)
			closers = append(closers, sw)
		}
	}

	logCfg.Output = logging.MultiWriter(writers...)
	logger := logging.New(logCfg)

	for _, p := range problems {
		logger.Warn("logging setup", "problem", p)
	}
	logger.Debug("starting", "version", brand.Version, "pid", os.Getpid())

	return logger, func() {
		for _, c := range closers {
			c.Close()
		}
	}
}

// syslogConfig maps the config block; zero values are filled in by the writer.
func syslogConfig(s *config.Syslog) logging.SyslogConfig {
	return logging.SyslogConfig{
		Host:     s.Host,
		Port:     s.Port,
		Protocol: s.Protocol,
		Tag:      s.Tag,
		Facility: s.Facility,
	}
}

// bootstrapLogger is used before configuration is known.
func bootstrapLogger(stderr io.Writer) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Output = stderr
	return logging.New(cfg)
}
