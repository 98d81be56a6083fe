//go:build linux

package metrics

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// supplyMillivolts reads the supply rail from the power-supply class.
// In-dash boards expose the vehicle's switched 12V rail; bench machines
// usually expose nothing and get 0.
func supplyMillivolts() int {
	matches, _ := filepath.Glob("/sys/class/power_supply/*/voltage_now")
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// voltage_now is in microvolts
		if uv, err := strconv.Atoi(strings.TrimSpace(string(data))); err == nil {
			return uv / 1000
		}
	}
	return 0
}

// backlightPercent reads the panel backlight level from the backlight
// class, scaled to 0-100.
func backlightPercent() int {
	dirs, _ := filepath.Glob("/sys/class/backlight/*")
	for _, dir := range dirs {
		cur, err := readSysInt(filepath.Join(dir, "brightness"))
		if err != nil {
			continue
		}
		max, err := readSysInt(filepath.Join(dir, "max_brightness"))
		if err != nil || max == 0 {
			continue
		}
		return cur * 100 / max
	}
	return -1
}

// signalRSSI reads the first wireless interface's signal level.
func signalRSSI() int {
	file, err := os.Open("/proc/net/wireless")
	if err != nil {
		return 0
	}
	defer file.Close()
	return parseWirelessRSSI(file)
}

// parseWirelessRSSI parses /proc/net/wireless content. The signal level
// is the fourth field, in dBm with a trailing dot.
func parseWirelessRSSI(r io.Reader) int {
	scanner := bufio.NewScanner(r)

	// Two header lines
	if !scanner.Scan() || !scanner.Scan() {
		return 0
	}

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		levelStr := strings.TrimSuffix(fields[3], ".")
		if level, err := strconv.ParseFloat(levelStr, 64); err == nil {
			return int(level)
		}
	}
	return 0
}

// defaultRouteInterface finds the interface carrying the default route
// by scanning the kernel route table.
func defaultRouteInterface() string {
	file, err := os.Open("/proc/net/route")
	if err != nil {
		return ""
	}
	defer file.Close()
	return parseRouteTable(file)
}

// parseRouteTable finds the interface whose destination is 00000000.
func parseRouteTable(r io.Reader) string {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() { // header
		return ""
	}
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[1] == "00000000" {
			return fields[0]
		}
	}
	return ""
}

func readSysInt(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}
