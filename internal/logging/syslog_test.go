package logging

import (
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSyslogConfig(t *testing.T) {
	cfg := DefaultSyslogConfig()

	assert.Equal(t, 514, cfg.Port)
	assert.Equal(t, "udp", cfg.Protocol)
	assert.Equal(t, "linkprobe", cfg.Tag)
	assert.Equal(t, 1, cfg.Facility)
}

func TestNewSyslogWriter_MissingHost(t *testing.T) {
	_, err := NewSyslogWriter(SyslogConfig{Host: ""})
	assert.Error(t, err)
}

func TestNormalizeSyslogConfig(t *testing.T) {
	cfg := normalizeSyslogConfig(SyslogConfig{Host: "localhost"})

	assert.Equal(t, 514, cfg.Port)
	assert.Equal(t, "udp", cfg.Protocol)
	assert.Equal(t, "linkprobe", cfg.Tag)
	assert.Equal(t, 1, cfg.Facility)
}

func TestFormatRFC3164(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 9, 4, 5, 0, time.UTC)
	msg := string(formatRFC3164(SyslogConfig{Facility: 3, Tag: "linkprobe"}, "gw01", ts, []byte("hello\n")))

	// daemon(3)*8 + info(6) = 30
	assert.True(t, strings.HasPrefix(msg, "<30>Mar  7 09:04:05 gw01 linkprobe["), msg)
	assert.True(t, strings.HasSuffix(msg, "]: hello\n"), msg)
}

func TestSyslogWriter_UDP(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	addr := pc.LocalAddr().(*net.UDPAddr)
	w, err := NewSyslogWriter(SyslogConfig{Host: "127.0.0.1", Port: addr.Port})
	require.NoError(t, err)
	defer w.Close()

	logger := New(Config{Level: LevelInfo, Output: w})
	logger.Warn("missing ping binary", "target", "8.8.8.8")

	require.NoError(t, pc.SetReadDeadline(time.Now().Add(2*time.Second)))
	buf := make([]byte, 2048)
	n, _, err := pc.ReadFrom(buf)
	require.NoError(t, err)

	got := string(buf[:n])
	assert.True(t, strings.HasPrefix(got, "<14>"), got)
	assert.Contains(t, got, "missing ping binary target=8.8.8.8")
}

func TestSyslogWriter_WriteAfterClose(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer pc.Close()

	w, err := NewSyslogWriter(SyslogConfig{Host: "127.0.0.1", Port: pc.LocalAddr().(*net.UDPAddr).Port})
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = w.Write([]byte("late"))
	assert.Error(t, err)
}
