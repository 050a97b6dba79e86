// Package checker decides whether one uplink is reachable.
//
// A check walks the configured target list in order, probing each target
// through the interface under test, and stops at the first target that
// answers. A single answering target is enough for an UP verdict; every
// other outcome (timeout, failure, invalid input, empty list) yields DOWN.
package checker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/logging"
	"grimm.is/linkprobe/internal/metrics"
	"grimm.is/linkprobe/internal/network"
	"grimm.is/linkprobe/internal/probe"
	"grimm.is/linkprobe/internal/validation"
)

// Verdict is the result of one check.
type Verdict int

const (
	Down Verdict = iota
	Up
)

// String returns the wire form printed by --check.
func (v Verdict) String() string {
	if v == Up {
		return "1"
	}
	return "0"
}

// Report is a verdict plus everything observed while reaching it.
type Report struct {
	Interface string
	Verdict   Verdict
	Attempts  []probe.Outcome
	Link      *network.LinkState // nil when no inspector is configured or input was rejected
	Rejected  error              // set when the interface name failed validation
	Elapsed   time.Duration
}

// LinkInspector reports interface state for diagnostics.
type LinkInspector interface {
	Inspect(name string) network.LinkState
}

// Checker runs link checks. It is safe to reuse but not designed for
// concurrent checks; the process runs exactly one.
type Checker struct {
	prober    probe.Prober
	cfg       *config.Probe
	logger    *logging.Logger
	inspector LinkInspector
	metrics   *metrics.Registry
	now       func() time.Time
}

// Option configures optional collaborators.
type Option func(*Checker)

// WithInspector enables netlink diagnostics before probing.
func WithInspector(i LinkInspector) Option {
	return func(c *Checker) { c.inspector = i }
}

// WithMetrics records attempts and the verdict in r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *Checker) { c.metrics = r }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Checker) { c.now = now }
}

// New creates a Checker. cfg must already have defaults applied.
func New(prober probe.Prober, cfg *config.Probe, logger *logging.Logger, opts ...Option) *Checker {
	if logger == nil {
		logger = logging.Discard()
	}
	c := &Checker{
		prober: prober,
		cfg:    cfg,
		logger: logger.WithComponent("checker"),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check returns the verdict for iface.
func (c *Checker) Check(ctx context.Context, iface string) Verdict {
	return c.Run(ctx, iface).Verdict
}

// Run performs a check and returns the full report. It never fails: every
// problem is folded into a DOWN verdict.
func (c *Checker) Run(ctx context.Context, iface string) Report {
	start := c.now()
	report := Report{Interface: iface, Verdict: Down}

	if err := validation.ValidateInterfaceName(iface); err != nil {
		// Nothing is recorded under an attacker-controlled label.
		c.logger.Debug("rejected interface name", "interface", validation.SanitizeString(iface), "error", err)
		report.Rejected = err
		return report
	}

	if c.inspector != nil {
		state := c.inspector.Inspect(iface)
		report.Link = &state
		c.logLinkState(state)
		if c.metrics != nil {
			c.metrics.SetLinkPresent(iface, state.Present)
		}
	}

	for _, target := range c.cfg.Targets {
		if strings.TrimSpace(target) == "" {
			continue
		}
		if ctx.Err() != nil {
			c.logger.Debug("check cancelled", "interface", iface, "error", ctx.Err())
			break
		}

		outcome := c.probeOne(ctx, iface, target)
		report.Attempts = append(report.Attempts, outcome)
		c.record(iface, outcome)

		if outcome.Responded() {
			report.Verdict = Up
			break
		}
	}

	report.Elapsed = c.now().Sub(start)
	if c.metrics != nil {
		c.metrics.ObserveCheck(iface, report.Verdict == Up, report.Elapsed, c.now())
	}
	c.logger.Info("check finished",
		"interface", iface,
		"verdict", report.Verdict.String(),
		"attempts", len(report.Attempts),
		"elapsed", report.Elapsed)
	return report
}

// probeOne probes a single target under its own bounded deadline.
func (c *Checker) probeOne(ctx context.Context, iface, target string) (outcome probe.Outcome) {
	tctx, cancel := context.WithTimeout(ctx, c.cfg.Deadline())
	defer cancel()

	start := c.now()
	defer func() {
		if r := recover(); r != nil {
			outcome = probe.Failed(target, fmt.Sprintf("prober panic: %v", r), true, c.now().Sub(start))
		}
	}()

	outcome = c.prober.Probe(tctx, probe.Request{
		Interface: iface,
		Target:    target,
		Count:     c.cfg.Count,
		Timeout:   c.cfg.TimeoutDuration(),
	})
	if outcome.Target == "" {
		outcome.Target = target
	}
	return outcome
}

func (c *Checker) record(iface string, o probe.Outcome) {
	if c.metrics != nil {
		c.metrics.ObserveAttempt(iface, o.Target, o.Status.String(), o.Elapsed)
	}
	if o.Responded() {
		c.logger.Debug("target responded", "interface", iface, "target", o.Target, "elapsed", o.Elapsed)
		return
	}

	args := []any{"interface", iface, "target", o.Target, "status", o.Status.String(), "reason", o.Reason}
	if o.Fault {
		c.logger.Warn("prober failed", args...)
	} else {
		c.logger.Debug("target did not respond", args...)
	}
}

func (c *Checker) logLinkState(s network.LinkState) {
	switch {
	case s.Error != "":
		c.logger.Debug("link inspection failed", "interface", s.Name, "error", s.Error)
	case !s.Present:
		c.logger.Warn("interface not present", "interface", s.Name)
	case !s.Usable():
		c.logger.Info("interface not usable", "interface", s.Name, "admin_up", s.AdminUp, "operstate", s.OperState)
	}
}
