// Package config handles probe configuration parsing, defaults and validation.
//
// # Overview
//
// The probe reads one configuration file per invocation, selected by the
// LINKPROBE_CONFIG environment variable (see package brand). HCL is the
// primary format; JSON and YAML are accepted by file extension. A missing file
// is not an error: the built-in reference configuration is used instead.
//
// # Configuration Blocks
//
//   - link: one per monitored uplink, in discovery order
//   - probe: target list and echo parameters shared by every link
//   - logging: diagnostic side channel (stderr, file or syslog)
//   - metrics: optional prometheus textfile export
//
// Example:
//
//	link "DigitalNet" {
//	  interface = "ppp1"
//	}
//
//	link "Vivo" {
//	  interface = "ppp0"
//	}
//
//	probe {
//	  targets = ["8.8.8.8", "8.8.4.4", "200.160.0.8"]
//	  count   = 3
//	  timeout = 2
//	  margin  = 2
//	  method  = "exec"
//	}
//
//	logging {
//	  level = "warn"
//	  syslog {
//	    host = "10.0.0.5"
//	  }
//	}
//
//	metrics {
//	  textfile_dir = "/var/lib/node_exporter/textfile"
//	}
package config
