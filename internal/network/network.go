// Package network inspects uplink interfaces via netlink.
//
// The probe uses it for diagnostics only: knowing that ppp1 vanished or went
// admin-down explains a DOWN verdict to an operator, but the verdict itself
// is always decided by probing.
package network

import (
	"net"

	"github.com/vishvananda/netlink"
)

// Netlinker is an interface that abstracts netlink interactions.
// This allows for mocking netlink calls during unit testing.
type Netlinker interface {
	LinkByName(name string) (netlink.Link, error)
}

// LinkState is a snapshot of an interface as seen by the kernel.
type LinkState struct {
	Name      string
	Present   bool   // the kernel knows the interface
	AdminUp   bool   // IFF_UP
	OperState string // RFC 2863 operstate: up, down, dormant, unknown...
	Error     string // lookup failed for a reason other than "not found"
}

// Operstates that count as usable.
var (
	operUp      = netlink.LinkOperState(netlink.OperUp).String()
	operUnknown = netlink.LinkOperState(netlink.OperUnknown).String()
)

// Usable reports whether traffic can plausibly leave through the interface.
// PPP and tun devices report operstate "unknown" while working.
func (s LinkState) Usable() bool {
	if !s.Present || !s.AdminUp {
		return false
	}
	return s.OperState == operUp || s.OperState == operUnknown
}

// Inspector reads interface state.
type Inspector struct {
	nl Netlinker
}

// NewInspector creates an Inspector. A nil Netlinker uses DefaultNetlinker.
func NewInspector(nl Netlinker) *Inspector {
	if nl == nil {
		nl = DefaultNetlinker
	}
	return &Inspector{nl: nl}
}

// Inspect returns the state of the named interface. It never fails; lookup
// problems are reported in LinkState.Error.
func (i *Inspector) Inspect(name string) LinkState {
	state := LinkState{Name: name}

	link, err := i.nl.LinkByName(name)
	if err != nil {
		if !isNotFound(err) {
			state.Error = err.Error()
		}
		return state
	}

	attrs := link.Attrs()
	if attrs == nil {
		state.Error = "link has no attributes"
		return state
	}

	state.Present = true
	state.AdminUp = attrs.Flags&net.FlagUp != 0
	state.OperState = attrs.OperState.String()
	return state
}
