//go:build linux

package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// deviceTreeModel reads the firmware-provided model string. Embedded
// boards expose it through the device tree; the value is NUL-terminated.
func deviceTreeModel(root string) string {
	data, err := os.ReadFile(filepath.Join(root, "proc/device-tree/model"))
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(data), "\x00\n")
}
