// Package platform identifies the board the process is running on and
// exposes its capabilities as a descriptor resolved once at startup.
package platform

import (
	"fmt"
	"strings"
)

// Capability names a board feature that startup stages gate on.
type Capability string

const (
	// CapSharedGLContext marks boards whose compositor requires all
	// windows to share one GL context.
	CapSharedGLContext Capability = "shared-gl-context"

	// CapTrustStoreOverride marks boards that ship their own CA bundle
	// in the vendor partition instead of a system trust store.
	CapTrustStoreOverride Capability = "trust-store-override"

	// CapBacklightControl marks boards with a controllable panel backlight.
	CapBacklightControl Capability = "backlight-control"

	// CapFullscreenOnly marks boards without a window manager; the
	// dashboard owns the whole panel.
	CapFullscreenOnly Capability = "fullscreen-only"
)

// Descriptor describes a board: its panel geometry and the set of
// capabilities the bootstrap conditions on. Descriptors are immutable
// after Detect resolves one.
type Descriptor struct {
	Board        string       // Board identifier reported in diagnostics
	Width        int          // Panel width in pixels
	Height       int          // Panel height in pixels
	Desc         string       // Human-readable description
	Capabilities []Capability // Named capability set
}

// Has reports whether the board carries the given capability.
func (d *Descriptor) Has(c Capability) bool {
	for _, have := range d.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Predefined boards
var (
	// Production in-dash units
	HUDOne = Descriptor{
		Board:  "hud-one",
		Width:  1920,
		Height: 720,
		Desc:   "RoadHUD One in-dash unit (1920x720)",
		Capabilities: []Capability{
			CapSharedGLContext,
			CapTrustStoreOverride,
			CapBacklightControl,
			CapFullscreenOnly,
		},
	}

	HUDClassic = Descriptor{
		Board:  "hud-classic",
		Width:  1280,
		Height: 800,
		Desc:   "RoadHUD Classic in-dash unit (1280x800)",
		Capabilities: []Capability{
			CapSharedGLContext,
			CapTrustStoreOverride,
			CapBacklightControl,
			CapFullscreenOnly,
		},
	}

	// Bench hardware without the vendor partition
	Devkit = Descriptor{
		Board:        "devkit",
		Width:        1280,
		Height:       720,
		Desc:         "Bench development kit (1280x720)",
		Capabilities: []Capability{CapBacklightControl},
	}

	// Desktop development windows
	Virtual = Descriptor{
		Board:        "virtual",
		Width:        1280,
		Height:       720,
		Desc:         "Virtual panel (1280x720)",
		Capabilities: nil,
	}

	VirtualWide = Descriptor{
		Board:        "virtual-wide",
		Width:        1920,
		Height:       720,
		Desc:         "Virtual panel, production aspect (1920x720)",
		Capabilities: nil,
	}
)

// AllBoards returns all predefined boards.
func AllBoards() []Descriptor {
	return []Descriptor{HUDOne, HUDClassic, Devkit, Virtual, VirtualWide}
}

// GetBoard returns the board with the given identifier (case-insensitive).
func GetBoard(name string) (*Descriptor, error) {
	for _, b := range AllBoards() {
		if strings.EqualFold(b.Board, name) {
			d := b
			return &d, nil
		}
	}
	return nil, fmt.Errorf("unknown board: %s", name)
}

// ListBoards returns a printable list of all boards.
func ListBoards() string {
	var sb strings.Builder
	sb.WriteString("Available boards:\n")
	for _, b := range AllBoards() {
		sb.WriteString(fmt.Sprintf("  %-14s %s\n", b.Board, b.Desc))
	}
	return sb.String()
}
