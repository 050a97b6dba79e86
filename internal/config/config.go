package config

import "time"

// CurrentSchemaVersion defines the current schema version of the configuration.
const CurrentSchemaVersion = "1.0"

// Probe methods.
const (
	MethodExec = "exec" // system ping binary, bound with -I
	MethodICMP = "icmp" // in-process pinger bound with SO_BINDTODEVICE
)

// Reference deployment values, used when the file omits them.
const (
	DefaultProbeCount   = 3
	DefaultProbeTimeout = 2 // seconds, per echo request
	DefaultProbeMargin  = 2 // seconds, added to timeout*count
	DefaultPingBinary   = "ping"
	DefaultLogLevel     = "warn"
)

// DefaultTargets are the public hosts probed when no target list is configured.
var DefaultTargets = []string{
	"8.8.8.8",
	"8.8.4.4",
	"200.160.0.8",
	"177.74.129.201",
	"31.13.80.8",
}

// Config is the top-level structure for the probe configuration.
// It is loaded once per process and treated as read-only afterwards.
type Config struct {
	// Schema version for forward compatibility; empty means "1.0".
	SchemaVersion string `hcl:"schema_version,optional" json:"schema_version,omitempty" yaml:"schema_version,omitempty"`

	// Links is the discovery registry. Order is significant and preserved.
	Links []Link `hcl:"link,block" json:"links" yaml:"links"`

	Probe   *Probe   `hcl:"probe,block" json:"probe,omitempty" yaml:"probe,omitempty"`
	Logging *Logging `hcl:"logging,block" json:"logging,omitempty" yaml:"logging,omitempty"`
	Metrics *Metrics `hcl:"metrics,block" json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// Link is a named uplink identified by its OS network interface.
type Link struct {
	Name      string `hcl:"name,label" json:"name" yaml:"name"`
	Interface string `hcl:"interface" json:"interface" yaml:"interface"`
}

// Probe configures how a single link check probes its targets.
type Probe struct {
	Targets []string `hcl:"targets,optional" json:"targets,omitempty" yaml:"targets,omitempty"` // IPs to ping, in order
	Count   int      `hcl:"count,optional" json:"count,omitempty" yaml:"count,omitempty"`       // Echo requests per target
	Timeout int      `hcl:"timeout,optional" json:"timeout,omitempty" yaml:"timeout,omitempty"` // Seconds per echo request
	// Margin is added to Timeout*Count to bound a hung prober. nil means default.
	Margin     *int   `hcl:"margin,optional" json:"margin,omitempty" yaml:"margin,omitempty"`
	Method     string `hcl:"method,optional" json:"method,omitempty" yaml:"method,omitempty"`
	Binary     string `hcl:"binary,optional" json:"binary,omitempty" yaml:"binary,omitempty"`             // exec method only
	Privileged bool   `hcl:"privileged,optional" json:"privileged,omitempty" yaml:"privileged,omitempty"` // icmp method only: raw socket
}

// Logging configures the diagnostic side channel. Logs never reach stdout.
type Logging struct {
	Level  string  `hcl:"level,optional" json:"level,omitempty" yaml:"level,omitempty"`
	JSON   bool    `hcl:"json,optional" json:"json,omitempty" yaml:"json,omitempty"`
	File   string  `hcl:"file,optional" json:"file,omitempty" yaml:"file,omitempty"` // append here instead of stderr
	Syslog *Syslog `hcl:"syslog,block" json:"syslog,omitempty" yaml:"syslog,omitempty"`
}

// Syslog configures remote syslog forwarding.
type Syslog struct {
	Host     string `hcl:"host" json:"host" yaml:"host"`
	Port     int    `hcl:"port,optional" json:"port,omitempty" yaml:"port,omitempty"`
	Protocol string `hcl:"protocol,optional" json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Tag      string `hcl:"tag,optional" json:"tag,omitempty" yaml:"tag,omitempty"`
	Facility int    `hcl:"facility,optional" json:"facility,omitempty" yaml:"facility,omitempty"`
}

// Metrics configures the prometheus textfile export.
type Metrics struct {
	// TextfileDir receives one .prom file per link for the node_exporter textfile collector.
	TextfileDir string `hcl:"textfile_dir,optional" json:"textfile_dir,omitempty" yaml:"textfile_dir,omitempty"`
}

// DefaultConfig returns the reference deployment: two PPP uplinks probed
// against five public resolvers and anycast hosts.
func DefaultConfig() *Config {
	cfg := &Config{
		SchemaVersion: CurrentSchemaVersion,
		Links: []Link{
			{Name: "DigitalNet", Interface: "ppp1"},
			{Name: "Vivo", Interface: "ppp0"},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills every unset optional field with its reference value.
func (c *Config) ApplyDefaults() {
	if c.SchemaVersion == "" {
		c.SchemaVersion = CurrentSchemaVersion
	}

	if c.Probe == nil {
		c.Probe = &Probe{}
	}
	p := c.Probe
	if p.Targets == nil {
		p.Targets = append([]string(nil), DefaultTargets...)
	}
	if p.Count == 0 {
		p.Count = DefaultProbeCount
	}
	if p.Timeout == 0 {
		p.Timeout = DefaultProbeTimeout
	}
	if p.Margin == nil {
		m := DefaultProbeMargin
		p.Margin = &m
	}
	if p.Method == "" {
		p.Method = MethodExec
	}
	if p.Binary == "" {
		p.Binary = DefaultPingBinary
	}

	if c.Logging == nil {
		c.Logging = &Logging{}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}

	if c.Metrics == nil {
		c.Metrics = &Metrics{}
	}
}

// TimeoutDuration returns the per-echo-request timeout.
func (p *Probe) TimeoutDuration() time.Duration {
	return time.Duration(p.Timeout) * time.Second
}

// MarginDuration returns the safety margin added on top of the prober's own timeout.
func (p *Probe) MarginDuration() time.Duration {
	if p.Margin == nil {
		return DefaultProbeMargin * time.Second
	}
	return time.Duration(*p.Margin) * time.Second
}

// Deadline returns the hard bound for probing one target:
// timeout*count + margin.
func (p *Probe) Deadline() time.Duration {
	return p.TimeoutDuration()*time.Duration(p.Count) + p.MarginDuration()
}
