// Package probe abstracts the reachability primitive used by a link check.
//
// A Prober sends a fixed number of echo requests to one target through one
// network interface and reports a tagged Outcome. Probers never return errors:
// every failure mode is folded into the Outcome so the caller can reduce a
// list of outcomes into a verdict without special cases.
package probe

import (
	"context"
	"fmt"
	"time"

	"grimm.is/linkprobe/internal/config"
	"grimm.is/linkprobe/internal/logging"
)

// Status is the tag of an Outcome.
type Status int

const (
	StatusResponded Status = iota // the primitive reported success
	StatusTimedOut                // the bounded deadline elapsed first
	StatusFailed                  // the primitive reported failure or could not run
)

func (s Status) String() string {
	switch s {
	case StatusResponded:
		return "responded"
	case StatusTimedOut:
		return "timed_out"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Request describes one probe round against one target.
type Request struct {
	Interface string
	Target    string
	Count     int           // echo requests in the round
	Timeout   time.Duration // per echo request
}

// Outcome is the result of one probe round.
type Outcome struct {
	Target  string
	Status  Status
	Reason  string // human readable detail for TimedOut/Failed
	Fault   bool   // the primitive itself broke (missing binary, bad interface, permissions)
	Elapsed time.Duration
}

// Responded reports whether the outcome counts towards an UP verdict.
func (o Outcome) Responded() bool {
	return o.Status == StatusResponded
}

// Responded builds a successful outcome.
func Responded(target string, elapsed time.Duration) Outcome {
	return Outcome{Target: target, Status: StatusResponded, Elapsed: elapsed}
}

// TimedOut builds an outcome for a round cut off by its deadline.
func TimedOut(target string, elapsed time.Duration) Outcome {
	return Outcome{Target: target, Status: StatusTimedOut, Reason: "deadline exceeded", Elapsed: elapsed}
}

// Failed builds an outcome for a round that did not succeed.
func Failed(target, reason string, fault bool, elapsed time.Duration) Outcome {
	return Outcome{Target: target, Status: StatusFailed, Reason: reason, Fault: fault, Elapsed: elapsed}
}

// Prober is the reachability primitive.
type Prober interface {
	Probe(ctx context.Context, req Request) Outcome
}

// ProberFunc adapts a function to the Prober interface.
type ProberFunc func(ctx context.Context, req Request) Outcome

// Probe calls f(ctx, req).
func (f ProberFunc) Probe(ctx context.Context, req Request) Outcome {
	return f(ctx, req)
}

// New returns the Prober selected by the probe configuration.
func New(cfg *config.Probe, logger *logging.Logger) (Prober, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	switch cfg.Method {
	case config.MethodExec, "":
		return NewExecProber(cfg.Binary, DefaultCommandExecutor, logger), nil
	case config.MethodICMP:
		return NewICMPProber(cfg.Privileged, logger), nil
	default:
		return nil, fmt.Errorf("unknown probe method %q", cfg.Method)
	}
}
