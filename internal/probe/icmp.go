package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	"grimm.is/linkprobe/internal/logging"
)

// NewPingerFunc creates a pinger for a target. Tests replace it.
var NewPingerFunc = func(target string) (*probing.Pinger, error) {
	return probing.NewPinger(target)
}

// ICMPProber probes with an in-process ICMP pinger bound to the interface.
// Binding needs CAP_NET_RAW; privileged selects raw sockets over datagram
// ICMP sockets (net.ipv4.ping_group_range).
type ICMPProber struct {
	privileged bool
	logger     *logging.Logger
}

// NewICMPProber creates an ICMPProber.
func NewICMPProber(privileged bool, logger *logging.Logger) *ICMPProber {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ICMPProber{
		privileged: privileged,
		logger:     logger.WithComponent("probe"),
	}
}

// Probe runs one round of req.Count echo requests. At least one reply is a
// success, mirroring ping's exit status.
func (p *ICMPProber) Probe(ctx context.Context, req Request) Outcome {
	start := time.Now()

	pinger, err := NewPingerFunc(req.Target)
	if err != nil {
		return Failed(req.Target, fmt.Sprintf("failed to create pinger: %v", err), true, time.Since(start))
	}

	pinger.Count = req.Count
	pinger.Timeout = req.Timeout * time.Duration(req.Count)
	pinger.InterfaceName = req.Interface
	pinger.SetPrivileged(p.privileged)

	p.logger.Debug("running probe", "target", req.Target, "interface", req.Interface, "count", req.Count, "privileged", p.privileged)

	err = pinger.RunWithContext(ctx)
	elapsed := time.Since(start)
	stats := pinger.Statistics()

	if stats != nil && stats.PacketsRecv > 0 {
		return Responded(req.Target, elapsed)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return TimedOut(req.Target, elapsed)
	}
	if err != nil {
		return Failed(req.Target, err.Error(), true, elapsed)
	}
	if ctx.Err() != nil {
		return Failed(req.Target, ctx.Err().Error(), false, elapsed)
	}

	sent := 0
	if stats != nil {
		sent = stats.PacketsSent
	}
	return Failed(req.Target, fmt.Sprintf("no reply (%d sent, 100%% loss)", sent), false, elapsed)
}
