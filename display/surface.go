// Package display owns the rendering-surface defaults and the main
// dashboard window.
package display

import "sync"

// RenderableType selects the GL flavor a surface is created for.
type RenderableType int

const (
	OpenGL RenderableType = iota
	OpenGLES
)

func (r RenderableType) String() string {
	if r == OpenGLES {
		return "gles"
	}
	return "opengl"
}

// SurfaceFormat holds the global defaults every rendering surface
// created after SetDefaultFormat inherits. Surfaces created before are
// unaffected; set it before any window exists.
type SurfaceFormat struct {
	RedBits     int
	GreenBits   int
	BlueBits    int
	AlphaBits   int
	DepthBits   int
	StencilBits int
	Samples     int
	// SwapInterval 1 is vsync; 0 tears.
	SwapInterval int
	GLMajor      int
	GLMinor      int
	Renderable   RenderableType
}

// DesktopFormat is the surface format for development machines.
func DesktopFormat() SurfaceFormat {
	return SurfaceFormat{
		RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8,
		SwapInterval: 1,
		GLMajor:      3, GLMinor: 2,
		Renderable: OpenGL,
	}
}

// EmbeddedFormat is the surface format for the in-dash boards: GLES,
// no depth or stencil, vsync locked to the panel.
func EmbeddedFormat() SurfaceFormat {
	return SurfaceFormat{
		RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8,
		SwapInterval: 1,
		GLMajor:      3, GLMinor: 1,
		Renderable: OpenGLES,
	}
}

var (
	surfaceMu     sync.Mutex
	defaultFormat = DesktopFormat()
	shareContexts bool
)

// SetDefaultFormat installs the global surface defaults.
func SetDefaultFormat(f SurfaceFormat) {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()
	defaultFormat = f
}

// DefaultFormat returns the current global surface defaults.
func DefaultFormat() SurfaceFormat {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()
	return defaultFormat
}

// SetShareContexts sets the shared-GL-context policy. The application
// runtime snapshots this at construction; setting it afterward has no
// effect on the running process. Idempotent.
func SetShareContexts(share bool) {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()
	shareContexts = share
}

// ShareContexts reports the shared-GL-context policy.
func ShareContexts() bool {
	surfaceMu.Lock()
	defer surfaceMu.Unlock()
	return shareContexts
}
