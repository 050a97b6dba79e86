package validation

import (
	"fmt"
	"net"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Interface allow-list: letters, digits, dot and dash only.
	// Anchored on the whole input, so a trailing newline is rejected too.
	interfaceNameRegex = regexp.MustCompile(`^[a-zA-Z0-9.-]+$`)

	// Dangerous characters that should never reach a log line or a command line
	dangerousChars = []string{";", "|", "&", "$", "`", "(", ")", "<", ">", "\\", "\"", "'", "\n", "\r"}
)

// ValidateInterfaceName validates a network interface identifier before it is
// handed to the probing primitive.
func ValidateInterfaceName(name string) error {
	if name == "" {
		return fmt.Errorf("interface name cannot be empty")
	}

	if !interfaceNameRegex.MatchString(name) {
		return fmt.Errorf("invalid interface name: %q (must be alphanumeric with .-)", name)
	}

	return nil
}

// ValidateLinkName validates a link display name. Names are free text for the
// monitoring frontend but must stay on one printable line.
func ValidateLinkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("link name cannot be empty")
	}
	if len(name) > 255 {
		return fmt.Errorf("link name too long (max 255 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("link name contains control character: %q", name)
		}
	}
	return nil
}

// ValidateProbeTarget validates a probe target address. Only literal IP
// addresses are accepted so a check never depends on name resolution.
func ValidateProbeTarget(s string) error {
	if s == "" {
		return fmt.Errorf("probe target cannot be empty")
	}
	if net.ParseIP(s) == nil {
		return fmt.Errorf("invalid IP address: %s", s)
	}
	return nil
}

// ValidateAllowlist checks if a value is in an allowed list
func ValidateAllowlist(value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("value not in allowlist: %s (must be one of: %s)", value, strings.Join(allowed, ", "))
}

// SanitizeString removes dangerous characters from a string (for display purposes)
func SanitizeString(s string) string {
	for _, char := range dangerousChars {
		s = strings.ReplaceAll(s, char, "")
	}
	return s
}
