package ui

import (
	"sync"

	"github.com/roadhud/roadhud-go/events"
)

// Window is the contract the runtime needs from the window subsystem.
// The runtime routes events to it and tracks it in the registry; what
// the window draws is its own business.
type Window interface {
	// Title identifies the window in diagnostics.
	Title() string

	// HandleEvent receives events after no filter consumed them.
	HandleEvent(ev *events.Event)

	// Show makes the window visible. On backends that own a native
	// event loop this blocks until the window closes.
	Show()

	// Close tears the window down.
	Close()

	// SetOnClosed registers a callback invoked after the window closes.
	SetOnClosed(fn func())
}

// Registry tracks the windows of the process and which one is the
// current main window. It holds references without owning them; windows
// belong to the window subsystem. Collaborators receive the registry
// from the runtime instead of reaching for a package global.
type Registry struct {
	mu      sync.RWMutex
	main    Window
	windows []Window
}

// SetMain registers w as the current main window, adding it to the
// registry if needed. A nil w clears the main window.
func (r *Registry) SetMain(w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.main = w
	if w != nil && !r.containsLocked(w) {
		r.windows = append(r.windows, w)
	}
}

// Main returns the current main window, or nil.
func (r *Registry) Main() Window {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.main
}

// Add registers a window without making it the main one.
func (r *Registry) Add(w Window) {
	if w == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.containsLocked(w) {
		r.windows = append(r.windows, w)
	}
}

// Remove drops a window from the registry, clearing the main slot if it
// held this window.
func (r *Registry) Remove(w Window) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.main == w {
		r.main = nil
	}
	for i, have := range r.windows {
		if have == w {
			r.windows = append(r.windows[:i], r.windows[i+1:]...)
			return
		}
	}
}

// Windows returns the registered windows in registration order.
func (r *Registry) Windows() []Window {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Window, len(r.windows))
	copy(out, r.windows)
	return out
}

func (r *Registry) containsLocked(w Window) bool {
	for _, have := range r.windows {
		if have == w {
			return true
		}
	}
	return false
}
