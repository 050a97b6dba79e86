package network

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vishvananda/netlink"
)

func dummy(name string, flags net.Flags, oper netlink.LinkOperState) netlink.Link {
	return &netlink.Dummy{LinkAttrs: netlink.LinkAttrs{Name: name, Flags: flags, OperState: oper}}
}

func operString(s netlink.LinkOperState) string {
	return s.String()
}

func TestInspector_Inspect(t *testing.T) {
	tests := []struct {
		name       string
		link       netlink.Link
		err        error
		wantState  LinkState
		wantUsable bool
	}{
		{
			name:       "ppp up reports unknown operstate",
			link:       dummy("ppp1", net.FlagUp|net.FlagPointToPoint, netlink.OperUnknown),
			wantState:  LinkState{Name: "ppp1", Present: true, AdminUp: true, OperState: operString(netlink.OperUnknown)},
			wantUsable: true,
		},
		{
			name:       "carrier up",
			link:       dummy("ppp1", net.FlagUp, netlink.OperUp),
			wantState:  LinkState{Name: "ppp1", Present: true, AdminUp: true, OperState: operString(netlink.OperUp)},
			wantUsable: true,
		},
		{
			name:      "admin down",
			link:      dummy("ppp1", 0, netlink.OperDown),
			wantState: LinkState{Name: "ppp1", Present: true, AdminUp: false, OperState: operString(netlink.OperDown)},
		},
		{
			name:      "no carrier",
			link:      dummy("ppp1", net.FlagUp, netlink.OperDormant),
			wantState: LinkState{Name: "ppp1", Present: true, AdminUp: true, OperState: operString(netlink.OperDormant)},
		},
		{
			name:      "netlink error",
			err:       errors.New("operation not permitted"),
			wantState: LinkState{Name: "ppp1", Error: "operation not permitted"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nl := new(MockNetlinker)
			nl.On("LinkByName", "ppp1").Return(tt.link, tt.err).Once()

			state := NewInspector(nl).Inspect("ppp1")

			nl.AssertExpectations(t)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantUsable, state.Usable())
		})
	}
}

func TestLinkState_UsableOperStates(t *testing.T) {
	usable := map[netlink.LinkOperState]bool{
		netlink.OperUp:             true,
		netlink.OperUnknown:        true,
		netlink.OperDown:           false,
		netlink.OperDormant:        false,
		netlink.OperNotPresent:     false,
		netlink.OperLowerLayerDown: false,
		netlink.OperTesting:        false,
	}
	for oper, want := range usable {
		s := LinkState{Name: "ppp1", Present: true, AdminUp: true, OperState: oper.String()}
		assert.Equal(t, want, s.Usable(), oper.String())
	}
}

func TestNewInspector_DefaultNetlinker(t *testing.T) {
	i := NewInspector(nil)
	assert.Equal(t, DefaultNetlinker, i.nl)
}
