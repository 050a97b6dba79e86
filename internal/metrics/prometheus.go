// Package metrics exports probe results in the prometheus text format.
//
// The probe is a short-lived process, so nothing is served over HTTP. Each
// invocation fills its own Registry and, when configured, writes it once to a
// node_exporter textfile collector directory.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "linkprobe"

// DiscoveryFile is the textfile written by a discovery run.
const DiscoveryFile = "linkprobe_discovery.prom"

// Registry holds all probe metrics for one invocation.
type Registry struct {
	reg *prometheus.Registry

	// Probe metrics
	ProbeAttempts *prometheus.CounterVec
	ProbeDuration *prometheus.HistogramVec

	// Link metrics
	LinkUp        *prometheus.GaugeVec
	LinkPresent   *prometheus.GaugeVec
	LastCheck     *prometheus.GaugeVec
	CheckDuration *prometheus.GaugeVec

	// Discovery
	LinksDiscovered prometheus.Gauge
}

// New creates a Registry backed by a fresh prometheus registry.
func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Registry{reg: reg}

	r.ProbeAttempts = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "probe_attempts_total",
		Help:      "Probe rounds by interface, target and outcome",
	}, []string{"interface", "target", "outcome"})

	r.ProbeDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "probe_duration_seconds",
		Help:      "Wall time of one probe round",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
	}, []string{"interface", "target"})

	r.LinkUp = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "link_up",
		Help:      "Verdict of the last check (1 = up, 0 = down)",
	}, []string{"interface"})

	r.LinkPresent = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "link_present",
		Help:      "Whether the kernel knows the interface (1 = present, 0 = missing)",
	}, []string{"interface"})

	r.LastCheck = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_check_timestamp_seconds",
		Help:      "Unix time the last check finished",
	}, []string{"interface"})

	r.CheckDuration = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "check_duration_seconds",
		Help:      "Wall time of the last check across all targets",
	}, []string{"interface"})

	r.LinksDiscovered = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "links_discovered",
		Help:      "Number of links emitted by the last discovery",
	})

	return r
}

// Gatherer exposes the underlying registry, mainly for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// ObserveAttempt records one probe round.
func (r *Registry) ObserveAttempt(iface, target, outcome string, elapsed time.Duration) {
	r.ProbeAttempts.WithLabelValues(iface, target, outcome).Inc()
	r.ProbeDuration.WithLabelValues(iface, target).Observe(elapsed.Seconds())
}

// ObserveCheck records the verdict of a finished check.
func (r *Registry) ObserveCheck(iface string, up bool, elapsed time.Duration, now time.Time) {
	r.LinkUp.WithLabelValues(iface).Set(boolToFloat(up))
	r.CheckDuration.WithLabelValues(iface).Set(elapsed.Seconds())
	r.LastCheck.WithLabelValues(iface).Set(float64(now.Unix()))
}

// SetLinkPresent records whether the interface exists.
func (r *Registry) SetLinkPresent(iface string, present bool) {
	r.LinkPresent.WithLabelValues(iface).Set(boolToFloat(present))
}

// SetLinksDiscovered records the size of an emitted discovery document.
func (r *Registry) SetLinksDiscovered(n int) {
	r.LinksDiscovered.Set(float64(n))
}

// WriteTextfile atomically writes the registry to dir/name.
func (r *Registry) WriteTextfile(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return path, fmt.Errorf("failed to create textfile directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return path, fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return path, nil
}

// CheckFile returns the textfile name used for checks of iface.
// The interface name has already passed the allow-list, so it is path safe.
func CheckFile(iface string) string {
	return "linkprobe_" + iface + ".prom"
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
