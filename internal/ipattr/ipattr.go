// Package ipattr adapts IPv4 CIDR prefixes onto the uint64 coordinate
// space intervalmap operates on, for the motivating ACL/IPAM use case
// described in the package doc: a table of address ranges, each tagged
// with a policy or lease owner, added and removed far more often than
// walked in full.
package ipattr

import (
	"fmt"
	"net/netip"

	"github.com/gaissmai/extnetip"
)

// Range converts an IPv4 CIDR prefix to the half-open [start, end) address
// range intervalmap expects, using extnetip to compute the prefix's first
// and last covered address without hand-rolling mask arithmetic.
func Range(prefix netip.Prefix) (start, end uint64, err error) {
	if !prefix.Addr().Is4() {
		return 0, 0, fmt.Errorf("ipattr: %s is not an IPv4 prefix", prefix)
	}
	first, last := extnetip.Range(prefix)
	if !first.IsValid() {
		return 0, 0, fmt.Errorf("ipattr: invalid prefix %s", prefix)
	}
	start = uint64(addr4(first))
	end = uint64(addr4(last)) + 1 // extnetip.Range returns an inclusive last address
	return start, end, nil
}

// addr4 extracts the big-endian uint32 form of an IPv4 netip.Addr.
func addr4(a netip.Addr) uint32 {
	b := a.As4()
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// Addr converts a uint64 coordinate (as produced by Range) back to an
// IPv4 netip.Addr, for rendering lookup results and table rows.
func Addr(coord uint64) netip.Addr {
	var b [4]byte
	b[0] = byte(coord >> 24)
	b[1] = byte(coord >> 16)
	b[2] = byte(coord >> 8)
	b[3] = byte(coord)
	return netip.AddrFrom4(b)
}
