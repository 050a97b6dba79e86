package probe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"grimm.is/linkprobe/internal/logging"
)

// CommandExecutor is an interface that abstracts executing external commands.
// Implementations must stop the command and release its pipes when ctx ends.
type CommandExecutor interface {
	RunCommand(ctx context.Context, name string, arg ...string) (string, error)
}

// DefaultCommandExecutor is the default RealCommandExecutor instance.
var DefaultCommandExecutor CommandExecutor = &RealCommandExecutor{}

// RealCommandExecutor is a concrete implementation of CommandExecutor using os/exec.
type RealCommandExecutor struct{}

// waitDelay bounds how long we wait for output pipes after the process was
// killed; a child that inherited them must not keep the probe alive.
const waitDelay = 500 * time.Millisecond

// RunCommand runs a command and returns its combined output.
func (r *RealCommandExecutor) RunCommand(ctx context.Context, name string, arg ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.WaitDelay = waitDelay
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("command %s %v failed: %w", name, arg, err)
	}
	return string(output), nil
}

// iputils ping exits 1 when no reply arrived and 2 on any other error
// (unknown interface, bad address, missing capability).
const pingExitError = 2

// ExecProber probes by running the system ping binary bound to the interface.
type ExecProber struct {
	binary   string
	executor CommandExecutor
	logger   *logging.Logger
}

// NewExecProber creates a prober that shells out to binary (usually "ping").
func NewExecProber(binary string, executor CommandExecutor, logger *logging.Logger) *ExecProber {
	if binary == "" {
		binary = "ping"
	}
	if executor == nil {
		executor = DefaultCommandExecutor
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &ExecProber{
		binary:   binary,
		executor: executor,
		logger:   logger.WithComponent("probe"),
	}
}

// Args returns the argument vector for one probe round.
func (p *ExecProber) Args(req Request) []string {
	return []string{
		"-I", req.Interface,
		"-c", strconv.Itoa(req.Count),
		"-W", strconv.Itoa(timeoutSeconds(req.Timeout)),
		req.Target,
	}
}

// Probe runs one ping round. Success is ping's own exit status 0.
func (p *ExecProber) Probe(ctx context.Context, req Request) Outcome {
	args := p.Args(req)
	p.logger.Debug("running probe", "cmd", p.binary, "args", strings.Join(args, " "))

	start := time.Now()
	output, err := p.executor.RunCommand(ctx, p.binary, args...)
	elapsed := time.Since(start)

	if err == nil {
		return Responded(req.Target, elapsed)
	}

	// The deadline wins over whatever the killed process reported.
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return TimedOut(req.Target, elapsed)
	}
	if ctx.Err() != nil {
		return Failed(req.Target, ctx.Err().Error(), false, elapsed)
	}

	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) && coded.ExitCode() >= 0 {
		code := coded.ExitCode()
		reason := fmt.Sprintf("exit status %d", code)
		if line := lastLine(output); line != "" {
			reason += ": " + line
		}
		return Failed(req.Target, reason, code >= pingExitError, elapsed)
	}

	// Could not start or talk to the binary at all.
	return Failed(req.Target, err.Error(), true, elapsed)
}

// timeoutSeconds converts the per-request timeout to ping's whole-second -W.
func timeoutSeconds(d time.Duration) int {
	s := int(math.Ceil(d.Seconds()))
	if s < 1 {
		return 1
	}
	return s
}

func lastLine(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
