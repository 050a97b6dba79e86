package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grimm.is/linkprobe/internal/config"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "responded", StatusResponded.String())
	assert.Equal(t, "timed_out", StatusTimedOut.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "status(7)", Status(7).String())
}

func TestOutcomeConstructors(t *testing.T) {
	ok := Responded("8.8.8.8", time.Millisecond)
	assert.True(t, ok.Responded())
	assert.Empty(t, ok.Reason)

	to := TimedOut("8.8.4.4", 8*time.Second)
	assert.False(t, to.Responded())
	assert.Equal(t, StatusTimedOut, to.Status)
	assert.False(t, to.Fault)

	f := Failed("1.1.1.1", "exit status 2", true, time.Second)
	assert.False(t, f.Responded())
	assert.True(t, f.Fault)
	assert.Equal(t, "exit status 2", f.Reason)
}

func TestProberFunc(t *testing.T) {
	var seen Request
	p := ProberFunc(func(ctx context.Context, req Request) Outcome {
		seen = req
		return Responded(req.Target, 0)
	})

	out := p.Probe(context.Background(), pppRequest)
	assert.True(t, out.Responded())
	assert.Equal(t, pppRequest, seen)
}

func TestNew(t *testing.T) {
	cfg := config.DefaultConfig().Probe

	p, err := New(cfg, nil)
	require.NoError(t, err)
	assert.IsType(t, &ExecProber{}, p)

	icmp := *cfg
	icmp.Method = config.MethodICMP
	p, err = New(&icmp, nil)
	require.NoError(t, err)
	assert.IsType(t, &ICMPProber{}, p)

	bad := *cfg
	bad.Method = "carrier-pigeon"
	_, err = New(&bad, nil)
	assert.Error(t, err)
}
