package config

import (
	"fmt"
	"strconv"
	"strings"

	"grimm.is/linkprobe/internal/logging"
	"grimm.is/linkprobe/internal/validation"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors.
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validate validates the entire configuration. Defaults must already be applied.
func (c *Config) Validate() ValidationErrors {
	var errs ValidationErrors

	errs = append(errs, c.validateSchemaVersion()...)
	errs = append(errs, c.validateLinks()...)
	errs = append(errs, c.validateProbe()...)
	errs = append(errs, c.validateLogging()...)

	return errs
}

func (c *Config) validateSchemaVersion() ValidationErrors {
	major, _, ok := strings.Cut(c.SchemaVersion, ".")
	if _, err := strconv.Atoi(major); !ok || err != nil {
		return ValidationErrors{{
			Field:   "schema_version",
			Message: fmt.Sprintf("invalid version format %q (expected X.Y)", c.SchemaVersion),
		}}
	}
	if major != "1" {
		return ValidationErrors{{
			Field:   "schema_version",
			Message: fmt.Sprintf("unsupported schema version %s (supported: %s)", c.SchemaVersion, CurrentSchemaVersion),
		}}
	}
	return nil
}

func (c *Config) validateLinks() ValidationErrors {
	var errs ValidationErrors

	if len(c.Links) == 0 {
		return ValidationErrors{{Field: "link", Message: "at least one link must be defined"}}
	}

	seen := make(map[string]bool, len(c.Links))
	for i, l := range c.Links {
		field := fmt.Sprintf("link[%d]", i)
		if err := validation.ValidateLinkName(l.Name); err != nil {
			errs = append(errs, ValidationError{Field: field + ".name", Message: err.Error()})
		} else if seen[l.Name] {
			errs = append(errs, ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate link name %q", l.Name)})
		}
		seen[l.Name] = true

		if err := validation.ValidateInterfaceName(l.Interface); err != nil {
			errs = append(errs, ValidationError{Field: field + ".interface", Message: err.Error()})
		}
	}

	return errs
}

func (c *Config) validateProbe() ValidationErrors {
	var errs ValidationErrors
	p := c.Probe
	if p == nil {
		return ValidationErrors{{Field: "probe", Message: "probe block missing (defaults not applied)"}}
	}

	// Empty entries are tolerated and skipped at check time.
	for i, target := range p.Targets {
		if strings.TrimSpace(target) == "" {
			continue
		}
		if err := validation.ValidateProbeTarget(target); err != nil {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("probe.targets[%d]", i), Message: err.Error()})
		}
	}

	if p.Count < 1 {
		errs = append(errs, ValidationError{Field: "probe.count", Message: fmt.Sprintf("must be positive, got %d", p.Count)})
	}
	if p.Timeout < 1 {
		errs = append(errs, ValidationError{Field: "probe.timeout", Message: fmt.Sprintf("must be positive, got %d", p.Timeout)})
	}
	if p.Margin != nil && *p.Margin < 0 {
		errs = append(errs, ValidationError{Field: "probe.margin", Message: fmt.Sprintf("must not be negative, got %d", *p.Margin)})
	}
	if err := validation.ValidateAllowlist(p.Method, []string{MethodExec, MethodICMP}); err != nil {
		errs = append(errs, ValidationError{Field: "probe.method", Message: err.Error()})
	}

	return errs
}

func (c *Config) validateLogging() ValidationErrors {
	var errs ValidationErrors
	l := c.Logging
	if l == nil {
		return nil
	}

	if _, err := logging.ParseLevel(l.Level); err != nil {
		errs = append(errs, ValidationError{Field: "logging.level", Message: err.Error()})
	}

	if s := l.Syslog; s != nil {
		if s.Host == "" {
			errs = append(errs, ValidationError{Field: "logging.syslog.host", Message: "is required"})
		}
		if s.Port < 0 || s.Port > 65535 {
			errs = append(errs, ValidationError{Field: "logging.syslog.port", Message: fmt.Sprintf("invalid port number: %d", s.Port)})
		}
		if s.Protocol != "" {
			if err := validation.ValidateAllowlist(s.Protocol, []string{"udp", "tcp"}); err != nil {
				errs = append(errs, ValidationError{Field: "logging.syslog.protocol", Message: err.Error()})
			}
		}
	}

	return errs
}
