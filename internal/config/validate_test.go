package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		Links: []Link{
			{Name: "DigitalNet", Interface: "ppp1"},
			{Name: "Vivo", Interface: "ppp0"},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func fields(errs ValidationErrors) []string {
	var out []string
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*Config)
		wantFields []string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "empty targets are allowed",
			mutate: func(c *Config) { c.Probe.Targets = []string{} },
		},
		{
			name:   "blank target entries are skipped",
			mutate: func(c *Config) { c.Probe.Targets = []string{"", "8.8.8.8"} },
		},
		{
			name:       "no links",
			mutate:     func(c *Config) { c.Links = nil },
			wantFields: []string{"link"},
		},
		{
			name:       "blank link name",
			mutate:     func(c *Config) { c.Links[0].Name = " " },
			wantFields: []string{"link[0].name"},
		},
		{
			name:       "duplicate link name",
			mutate:     func(c *Config) { c.Links[1].Name = "DigitalNet" },
			wantFields: []string{"link[1].name"},
		},
		{
			name:       "interface with shell metacharacters",
			mutate:     func(c *Config) { c.Links[1].Interface = "ppp0 && id" },
			wantFields: []string{"link[1].interface"},
		},
		{
			name:       "hostname target",
			mutate:     func(c *Config) { c.Probe.Targets = []string{"8.8.8.8", "one.one.one.one"} },
			wantFields: []string{"probe.targets[1]"},
		},
		{
			name: "zero count and timeout",
			mutate: func(c *Config) {
				c.Probe.Count = 0
				c.Probe.Timeout = -5
			},
			wantFields: []string{"probe.count", "probe.timeout"},
		},
		{
			name:       "unknown method",
			mutate:     func(c *Config) { c.Probe.Method = "arping" },
			wantFields: []string{"probe.method"},
		},
		{
			name: "syslog without host",
			mutate: func(c *Config) {
				c.Logging.Syslog = &Syslog{Protocol: "sctp", Port: 70000}
			},
			wantFields: []string{"logging.syslog.host", "logging.syslog.port", "logging.syslog.protocol"},
		},
		{
			name:       "bad schema version",
			mutate:     func(c *Config) { c.SchemaVersion = "one" },
			wantFields: []string{"schema_version"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errs := cfg.Validate()
			assert.Equal(t, tt.wantFields, fields(errs))
			assert.Equal(t, len(tt.wantFields) > 0, errs.HasErrors())
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "", errs.Error())

	errs = ValidationErrors{
		{Field: "probe.count", Message: "must be positive, got 0"},
		{Field: "probe.method", Message: "bad"},
	}
	assert.Equal(t, "probe.count: must be positive, got 0; probe.method: bad", errs.Error())
}

func TestLoadWrapsValidationErrors(t *testing.T) {
	_, err := LoadHCL([]byte(`link "wan" { interface = "bad iface" }`), "x.hcl")
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, strings.HasPrefix(err.Error(), "invalid configuration: "))
	assert.Equal(t, []string{"link[0].interface"}, fields(verrs))
}
