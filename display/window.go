package display

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/roadhud/roadhud-go/config"
	"github.com/roadhud/roadhud-go/events"
	"github.com/roadhud/roadhud-go/platform"
	"github.com/roadhud/roadhud-go/render"
)

// MainWindow is the top-level dashboard window. It satisfies the
// runtime's Window interface for normal event routing and its Filter
// interface for the wake-on-input behavior: installed as a global event
// filter, it consumes the first input that arrives while the panel is
// blanked and wakes the display instead of routing the event.
type MainWindow struct {
	app    fyne.App
	window fyne.Window
	frame  *canvas.Image
	status *widget.Label

	width  int
	height int

	mu        sync.Mutex
	blanked   bool
	lastFrame []byte

	postMu sync.RWMutex
	post   func(ev *events.Event)
}

// NewMainWindow builds the dashboard window sized for the board.
// Explicit config geometry overrides the panel geometry; fullscreen-only
// boards always go fullscreen. The splash message is rendered
// immediately, so install the translator before calling this.
func NewMainWindow(cfg *config.Config, board *platform.Descriptor, splash string) *MainWindow {
	return newMainWindow(app.New(), cfg, board, splash)
}

// newMainWindow is split out so tests can pass a headless fyne app.
func newMainWindow(a fyne.App, cfg *config.Config, board *platform.Descriptor, splash string) *MainWindow {
	w := &MainWindow{
		app:    a,
		width:  board.Width,
		height: board.Height,
	}
	if cfg.WindowWidth > 0 && cfg.WindowHeight > 0 {
		w.width = cfg.WindowWidth
		w.height = cfg.WindowHeight
	}

	w.window = a.NewWindow("RoadHUD")
	if cfg.Fullscreen || board.Has(platform.CapFullscreenOnly) {
		w.window.SetFullScreen(true)
	} else {
		w.window.Resize(fyne.NewSize(float32(w.width), float32(w.height)))
		w.window.SetFixedSize(true)
	}
	w.window.SetMaster()

	w.frame = canvas.NewImageFromImage(nil)
	w.frame.FillMode = canvas.ImageFillContain
	w.frame.SetMinSize(fyne.NewSize(float32(w.width), float32(w.height)))

	w.status = widget.NewLabel("")
	w.status.Alignment = fyne.TextAlignCenter

	w.window.SetContent(container.NewBorder(nil, w.status, nil, nil, w.frame))

	// Physical key input feeds the runtime queue.
	w.window.Canvas().SetOnTypedKey(func(ke *fyne.KeyEvent) {
		w.postMu.RLock()
		post := w.post
		w.postMu.RUnlock()
		if post != nil {
			post(events.NewKey(string(ke.Name)))
		}
	})

	if data, err := render.StartupScreen(w.width, w.height, splash); err == nil {
		_ = w.setFrame(data)
	}
	return w
}

// SetPoster wires window-originated input into the runtime queue.
func (w *MainWindow) SetPoster(post func(ev *events.Event)) {
	w.postMu.Lock()
	defer w.postMu.Unlock()
	w.post = post
}

// Title identifies the window in diagnostics.
func (w *MainWindow) Title() string { return "RoadHUD" }

// HandleEvent is the normal routing target for unconsumed events.
func (w *MainWindow) HandleEvent(ev *events.Event) {
	switch ev.Type {
	case events.TypeSleep:
		w.setBlanked(true)
	case events.TypeWake:
		w.setBlanked(false)
	}
}

// FilterEvent implements the global wake-on-input filter: any touch or
// key while blanked wakes the panel and is consumed.
func (w *MainWindow) FilterEvent(ev *events.Event) bool {
	switch ev.Type {
	case events.TypeTouchPress, events.TypeTouchMove, events.TypeTouchRelease, events.TypeKeyPress:
		if w.Blanked() {
			w.setBlanked(false)
			return true
		}
	}
	return false
}

// Blanked reports whether the panel is currently blanked.
func (w *MainWindow) Blanked() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.blanked
}

func (w *MainWindow) setBlanked(blanked bool) {
	w.mu.Lock()
	if w.blanked == blanked {
		w.mu.Unlock()
		return
	}
	w.blanked = blanked
	last := w.lastFrame
	w.mu.Unlock()

	if blanked {
		if data, err := render.BlankScreen(w.width, w.height); err == nil {
			_ = w.showFrame(data)
		}
		return
	}
	if last != nil {
		_ = w.showFrame(last)
	}
}

// UpdateFrame displays a new dashboard frame. The frame is remembered
// and restored when the panel wakes from blanking.
func (w *MainWindow) UpdateFrame(data []byte) error {
	w.mu.Lock()
	w.lastFrame = data
	blanked := w.blanked
	w.mu.Unlock()
	if blanked {
		return nil
	}
	return w.showFrame(data)
}

// setFrame displays a frame without recording it as dashboard content.
func (w *MainWindow) setFrame(data []byte) error {
	w.mu.Lock()
	w.lastFrame = data
	w.mu.Unlock()
	return w.showFrame(data)
}

func (w *MainWindow) showFrame(data []byte) error {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode frame: %w", err)
	}
	fyne.Do(func() {
		w.frame.Image = img
		w.frame.Refresh()
	})
	return nil
}

// ShowError replaces the frame with a rendered error screen.
func (w *MainWindow) ShowError(title, message string) {
	if data, err := render.ErrorScreen(w.width, w.height, title, message); err == nil {
		_ = w.setFrame(data)
	}
}

// UpdateStatus updates the status line under the frame.
func (w *MainWindow) UpdateStatus(status string) {
	fyne.Do(func() {
		w.status.SetText(status)
	})
}

// Show makes the window visible and runs the windowing backend's loop;
// it blocks until the window closes.
func (w *MainWindow) Show() {
	w.window.Show()
	w.app.Run()
}

// SetOnClosed registers a callback invoked after the window closes.
func (w *MainWindow) SetOnClosed(fn func()) {
	w.window.SetOnClosed(fn)
}

// Close closes the window. Safe to call from any goroutine; the
// toolkit is only touched on its own thread.
func (w *MainWindow) Close() {
	fyne.Do(func() {
		w.window.Close()
	})
}
