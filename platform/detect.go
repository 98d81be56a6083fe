package platform

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Board marker installed by the vendor image. Contains the board
// identifier on production units; absent on development machines.
const markerPath = "etc/roadhud-board"

// Device-tree model substrings mapped to boards, checked in order.
var modelMatches = []struct {
	substr string
	board  *Descriptor
}{
	{"RoadHUD One", &HUDOne},
	{"RoadHUD Classic", &HUDClassic},
	{"RoadHUD Devkit", &Devkit},
}

var (
	detectOnce sync.Once
	detected   *Descriptor
)

// Detect resolves the board descriptor for this process. The result is
// computed once and treated as immutable for the process lifetime;
// later calls return the same descriptor.
func Detect() *Descriptor {
	detectOnce.Do(func() {
		detected = detect("/")
	})
	return detected
}

// detect resolves the board relative to the given filesystem root.
// Split out from Detect so tests can point it at a scratch rootfs.
func detect(root string) *Descriptor {
	// Explicit override wins, for bench setups and desktop development.
	if name := os.Getenv("ROADHUD_BOARD"); name != "" {
		if b, err := GetBoard(name); err == nil {
			return b
		}
	}

	if data, err := os.ReadFile(filepath.Join(root, markerPath)); err == nil {
		name := strings.TrimSpace(string(data))
		if b, err := GetBoard(name); err == nil {
			return b
		}
	}

	if model := deviceTreeModel(root); model != "" {
		for _, m := range modelMatches {
			if strings.Contains(model, m.substr) {
				d := *m.board
				return &d
			}
		}
	}

	d := Virtual
	return &d
}
