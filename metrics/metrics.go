// Package metrics probes the unit's hardware state: supply voltage,
// panel backlight, radio signal, and the network-derived device
// identity used by telemetry.
package metrics

import (
	"fmt"
	"net"
)

// SystemMetrics holds a snapshot of the unit's hardware state.
type SystemMetrics struct {
	// SupplyMillivolts is the measured supply rail, or 0 when the
	// board exposes no sensor.
	SupplyMillivolts int

	// BacklightPercent is the panel backlight level (0-100), or -1
	// when unavailable.
	BacklightPercent int

	// SignalRSSI is the modem/WiFi signal strength in dBm, or 0 when
	// unavailable.
	SignalRSSI int
}

// Collect gathers current hardware metrics. Probes that fail leave
// their zero/sentinel values; collection itself never fails.
func Collect() SystemMetrics {
	return SystemMetrics{
		SupplyMillivolts: supplyMillivolts(),
		BacklightPercent: backlightPercent(),
		SignalRSSI:       signalRSSI(),
	}
}

// DeviceID returns the unit identity: the MAC address of the primary
// network interface.
func DeviceID() (string, error) {
	if name := defaultRouteInterface(); name != "" {
		if iface, err := net.InterfaceByName(name); err == nil && len(iface.HardwareAddr) > 0 {
			return iface.HardwareAddr.String(), nil
		}
	}

	// No default route yet (common right after ignition); fall back to
	// the first usable interface.
	interfaces, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback == 0 && len(iface.HardwareAddr) > 0 {
			return iface.HardwareAddr.String(), nil
		}
	}
	return "", fmt.Errorf("no network interface with a hardware address")
}

// DeviceIDForInterface returns the MAC address of a specific interface.
func DeviceIDForInterface(name string) (string, error) {
	if name == "" {
		return DeviceID()
	}
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return "", err
	}
	if len(iface.HardwareAddr) == 0 {
		return "", fmt.Errorf("interface %s has no hardware address", name)
	}
	return iface.HardwareAddr.String(), nil
}

// PrimaryInterfaceName returns the name of the default-route interface,
// or the first up non-loopback interface when no route exists.
func PrimaryInterfaceName() string {
	if name := defaultRouteInterface(); name != "" {
		return name
	}
	interfaces, err := net.Interfaces()
	if err != nil {
		return ""
	}
	for _, iface := range interfaces {
		if iface.Flags&net.FlagLoopback == 0 && iface.Flags&net.FlagUp != 0 {
			return iface.Name
		}
	}
	return ""
}
