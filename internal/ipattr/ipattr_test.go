package ipattr_test

import (
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinterval/intervalmap/internal/ipattr"
)

func TestRangeSlash24(t *testing.T) {
	start, end, err := ipattr.Range(netip.MustParsePrefix("10.0.1.0/24"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0A000100), start)
	assert.Equal(t, uint64(0x0A000200), end)
	assert.Equal(t, uint64(256), end-start)
}

func TestRangeSingleHost(t *testing.T) {
	start, end, err := ipattr.Range(netip.MustParsePrefix("192.168.1.1/32"))
	require.NoError(t, err)
	assert.Equal(t, end-start, uint64(1))
}

func TestRangeRejectsIPv6(t *testing.T) {
	_, _, err := ipattr.Range(netip.MustParsePrefix("fc00::/7"))
	assert.Error(t, err)
}

func TestAddrRoundTrip(t *testing.T) {
	want := netip.MustParseAddr("203.0.113.42")
	start, _, err := ipattr.Range(netip.PrefixFrom(want, 32))
	require.NoError(t, err)
	assert.Equal(t, want, ipattr.Addr(start))
}
