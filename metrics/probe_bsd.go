//go:build darwin || freebsd || netbsd || openbsd

package metrics

import (
	"net"

	"golang.org/x/net/route"
)

// No supply rail or backlight sysfs on BSD-like development machines.
func supplyMillivolts() int { return 0 }
func backlightPercent() int { return -1 }
func signalRSSI() int       { return 0 }

// defaultRouteInterface walks the routing information base looking for
// the default (0.0.0.0) route.
func defaultRouteInterface() string {
	rib, err := route.FetchRIB(0, route.RIBTypeRoute, 0)
	if err != nil {
		return ""
	}
	msgs, err := route.ParseRIB(route.RIBTypeRoute, rib)
	if err != nil {
		return ""
	}

	for _, msg := range msgs {
		rm, ok := msg.(*route.RouteMessage)
		if !ok {
			continue
		}
		for _, addr := range rm.Addrs {
			a, ok := addr.(*route.Inet4Addr)
			if !ok || a.IP != [4]byte{0, 0, 0, 0} {
				continue
			}
			if iface, err := net.InterfaceByIndex(rm.Index); err == nil {
				return iface.Name
			}
		}
	}
	return ""
}
