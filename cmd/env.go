package cmd

import (
	"io"
	"os"
	"time"

	"golang.org/x/text/message"

	"grimm.is/linkprobe/internal/brand"
	"grimm.is/linkprobe/internal/checker"
	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/i18n"
	"grimm.is/linkprobe/internal/logging"
	"grimm.is/linkprobe/internal/network"
	"grimm.is/linkprobe/internal/probe"
)

// ProberFactory builds the reachability primitive for a check.
type ProberFactory func(cfg *config.Probe, logger *logging.Logger) (probe.Prober, error)

// Env is the process boundary of a mode: streams, configuration location and
// the collaborators that touch the host.
type Env struct {
	Stdout     io.Writer
	Stderr     io.Writer
	ConfigPath string
	Printer    *message.Printer

	NewProber ProberFactory
	Inspector checker.LinkInspector // nil disables link diagnostics
	Now       func() time.Time
}

// DefaultEnv wires the real host.
func DefaultEnv() *Env {
	return &Env{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		ConfigPath: brand.GetConfigPath(),
		Printer:    i18n.NewCLIPrinter(),
		NewProber:  probe.New,
		Inspector:  network.NewInspector(nil),
		Now:        time.Now,
	}
}

func (e *Env) printer() *message.Printer {
	if e.Printer == nil {
		e.Printer = i18n.NewPrinter(i18n.DefaultLang)
	}
	return e.Printer
}

func (e *Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
