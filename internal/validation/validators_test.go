package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInterfaceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Happy paths
		{"ppp", "ppp1", false},
		{"with dash", "wan-backup", false},
		{"with dot (vlan)", "eth0.100", false},
		{"uppercase", "WAN0", false},

		// Sad paths
		{"empty", "", true},
		{"underscore", "eth_0", true},
		{"space", "eth 0", true},
		{"tab", "eth0\t", true},
		{"semicolon injection", "eth0; rm -rf /", true},
		{"pipe injection", "eth0|cat", true},
		{"ampersand", "eth0&", true},
		{"dollar sign", "eth0$USER", true},
		{"backtick", "eth0`whoami`", true},
		{"path separator", "../eth0", true},
		{"redirect", "eth0>file", true},
		{"trailing newline", "eth0\n", true},
		{"unicode", "eth0é", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInterfaceName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInterfaceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateLinkName(t *testing.T) {
	assert.NoError(t, ValidateLinkName("DigitalNet"))
	assert.NoError(t, ValidateLinkName("Vivo Fibra 500M"))

	assert.Error(t, ValidateLinkName(""))
	assert.Error(t, ValidateLinkName("   "))
	assert.Error(t, ValidateLinkName("bad\nname"))
}

func TestValidateProbeTarget(t *testing.T) {
	assert.NoError(t, ValidateProbeTarget("8.8.8.8"))
	assert.NoError(t, ValidateProbeTarget("2001:4860:4860::8888"))

	assert.Error(t, ValidateProbeTarget(""))
	assert.Error(t, ValidateProbeTarget("dns.google"))
	assert.Error(t, ValidateProbeTarget("8.8.8.8/32"))
	assert.Error(t, ValidateProbeTarget("256.1.1.1"))
}

func TestValidateAllowlist(t *testing.T) {
	assert.NoError(t, ValidateAllowlist("exec", []string{"exec", "icmp"}))
	assert.Error(t, ValidateAllowlist("tcp", []string{"exec", "icmp"}))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "eth0 rm -rf /", SanitizeString("eth0; rm -rf /"))
	assert.Equal(t, "eth0whoami", SanitizeString("eth0`whoami`"))
}
