//go:build linux
// +build linux

package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishvananda/netlink"
)

func TestInspector_NotFound(t *testing.T) {
	nl := new(MockNetlinker)
	nl.On("LinkByName", "ppp9").Return(nil, netlink.LinkNotFoundError{})

	state := NewInspector(nl).Inspect("ppp9")

	assert.Equal(t, LinkState{Name: "ppp9"}, state)
	assert.False(t, state.Usable())
}

func TestRealNetlinker_Loopback(t *testing.T) {
	// Reading links needs no privileges; sandboxes without netlink just log.
	state := NewInspector(&RealNetlinker{}).Inspect("lo")
	if state.Error != "" {
		t.Logf("netlink unavailable: %s", state.Error)
		return
	}
	assert.True(t, state.Present)
	assert.True(t, state.AdminUp)
}
