package logging

import (
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"sync"
	"time"

	"grimm.is/linkprobe/internal/brand"
)

// SyslogConfig holds syslog remote server configuration.
type SyslogConfig struct {
	Host     string // Remote syslog server hostname or IP
	Port     int    // Remote syslog server port (default: 514)
	Protocol string // udp or tcp (default: udp)
	Tag      string // Syslog tag/app name (default: linkprobe)
	Facility int    // Syslog facility (default: 1 = user)
}

// DefaultSyslogConfig returns sensible defaults.
func DefaultSyslogConfig() SyslogConfig {
	return SyslogConfig{
		Port:     514,
		Protocol: "udp",
		Tag:      brand.LowerName,
		Facility: 1, // LOG_USER
	}
}

// SyslogWriter implements io.Writer and sends logs to a remote syslog server.
// A probe invocation is short-lived, so there is no reconnect logic: a failed
// write is reported once and the connection is dropped.
type SyslogWriter struct {
	mu       sync.Mutex
	conn     net.Conn
	config   SyslogConfig
	hostname string
}

// NewSyslogWriter creates a new syslog writer.
func NewSyslogWriter(cfg SyslogConfig) (*SyslogWriter, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("syslog host is required")
	}
	cfg = normalizeSyslogConfig(cfg)

	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	conn, err := net.DialTimeout(cfg.Protocol, addr, 2*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to syslog server %s: %w", addr, err)
	}

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = brand.LowerName
	}

	return &SyslogWriter{
		conn:     conn,
		config:   cfg,
		hostname: hostname,
	}, nil
}

func normalizeSyslogConfig(cfg SyslogConfig) SyslogConfig {
	def := DefaultSyslogConfig()
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.Protocol == "" {
		cfg.Protocol = def.Protocol
	}
	if cfg.Tag == "" {
		cfg.Tag = def.Tag
	}
	if cfg.Facility == 0 {
		cfg.Facility = def.Facility
	}
	return cfg
}

// Write implements io.Writer for syslog.
// Formats message in RFC 3164 format: <priority>timestamp hostname tag[pid]: message
func (w *SyslogWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn == nil {
		return 0, fmt.Errorf("syslog connection closed")
	}

	_, err = w.conn.Write(formatRFC3164(w.config, w.hostname, time.Now(), p))
	if err != nil {
		w.conn.Close()
		w.conn = nil
		return 0, err
	}

	return len(p), nil
}

// formatRFC3164 frames one log line. Priority = facility * 8 + severity,
// severity is fixed at INFO (6); the level is already part of the line.
func formatRFC3164(cfg SyslogConfig, hostname string, ts time.Time, p []byte) []byte {
	priority := cfg.Facility*8 + 6
	return []byte(fmt.Sprintf("<%d>%s %s %s[%d]: %s", priority, ts.Format(time.Stamp), hostname, cfg.Tag, os.Getpid(), string(p)))
}

// Close closes the syslog connection.
func (w *SyslogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.conn != nil {
		err := w.conn.Close()
		w.conn = nil
		return err
	}
	return nil
}

// MultiWriter combines multiple io.Writers (e.g., stderr + syslog).
func MultiWriter(writers ...io.Writer) io.Writer {
	return io.MultiWriter(writers...)
}
