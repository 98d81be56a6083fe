//go:build linux

package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWirelessRSSI(t *testing.T) {
	content := `Inter-| sta-|   Quality        |   Discarded packets               | Missed | WE
 face | tus | link level noise |  nwid  crypt   frag  retry   misc | beacon | 22
 wlan0: 0000   70.  -42.  -256        0      0      0      0      0        0
`
	assert.Equal(t, -42, parseWirelessRSSI(strings.NewReader(content)))
}

func TestParseWirelessRSSINoInterfaces(t *testing.T) {
	content := "header one\nheader two\n"
	assert.Equal(t, 0, parseWirelessRSSI(strings.NewReader(content)))
}

func TestParseRouteTable(t *testing.T) {
	content := `Iface	Destination	Gateway 	Flags	RefCnt	Use	Metric	Mask		MTU	Window	IRTT
eth0	000011AC	00000000	0001	0	0	0	0000FFFF	0	0	0
wwan0	00000000	010011AC	0003	0	0	0	00000000	0	0	0
`
	assert.Equal(t, "wwan0", parseRouteTable(strings.NewReader(content)))
}

func TestParseRouteTableNoDefault(t *testing.T) {
	content := `Iface	Destination	Gateway
eth0	000011AC	00000000
`
	assert.Equal(t, "", parseRouteTable(strings.NewReader(content)))
}
