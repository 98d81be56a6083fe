// Package ui is the application runtime: the singleton that owns the
// event queue, the dispatch loop, the global event filters, the window
// registry, and the installed translator.
package ui

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/roadhud/roadhud-go/display"
	"github.com/roadhud/roadhud-go/events"
	"github.com/roadhud/roadhud-go/i18n"
)

var (
	appMu  sync.Mutex
	theApp *App
)

// App owns the event dispatch loop. Construct exactly one per process
// with New; it lives until the process exits.
type App struct {
	args          []string
	shareContexts bool

	queue   *events.Queue
	windows Registry

	filterMu sync.RWMutex
	filters  []*filterHandle

	translatorMu sync.RWMutex
	translator   *i18n.Translator

	exitCode atomic.Int32
	quitOnce sync.Once
}

// New constructs the application runtime, passing through the process
// arguments. The shared-GL-context policy is snapshotted here; changing
// it afterward has no effect. Constructing a second runtime in the same
// process is an error.
func New(args []string) (*App, error) {
	appMu.Lock()
	defer appMu.Unlock()
	if theApp != nil {
		return nil, fmt.Errorf("application runtime already constructed")
	}

	a := &App{
		args:          append([]string(nil), args...),
		shareContexts: display.ShareContexts(),
		queue:         events.NewQueue(),
	}
	theApp = a
	return a, nil
}

// TheApp returns the current runtime, or nil before New.
func TheApp() *App {
	appMu.Lock()
	defer appMu.Unlock()
	return theApp
}

// Reset forgets the current runtime so a new one can be constructed.
// Intended for tests.
func Reset() {
	appMu.Lock()
	defer appMu.Unlock()
	theApp = nil
}

// Args returns the process arguments the runtime was constructed with.
func (a *App) Args() []string {
	return append([]string(nil), a.args...)
}

// ShareContexts reports the GL context-sharing policy snapshotted at
// construction.
func (a *App) ShareContexts() bool { return a.shareContexts }

// Windows returns the window registry.
func (a *App) Windows() *Registry { return &a.windows }

// InstallTranslator makes t the active translation catalogue for all
// text rendered afterwards. Install before constructing windows; text
// already rendered stays in the previous language.
func (a *App) InstallTranslator(t *i18n.Translator) {
	a.translatorMu.Lock()
	defer a.translatorMu.Unlock()
	a.translator = t
}

// Translator returns the installed translator, which may be nil.
func (a *App) Translator() *i18n.Translator {
	a.translatorMu.RLock()
	defer a.translatorMu.RUnlock()
	return a.translator
}

// T translates a message ID through the installed catalogue, returning
// the ID itself when no catalogue is active.
func (a *App) T(id string) string {
	return a.Translator().T(id)
}

// filterHandle wraps an installed filter so removal works by handle
// identity. Filters themselves may have uncomparable dynamic types
// such as FilterFunc.
type filterHandle struct {
	filter events.Filter
}

// InstallEventFilter registers f as a global event filter. Every
// dispatched event is offered to filters in installation order before
// normal routing; a filter returning true consumes the event. The
// returned function unregisters the filter and may be called more
// than once.
func (a *App) InstallEventFilter(f events.Filter) (remove func()) {
	h := &filterHandle{filter: f}
	a.filterMu.Lock()
	a.filters = append(a.filters, h)
	a.filterMu.Unlock()

	return func() {
		a.filterMu.Lock()
		defer a.filterMu.Unlock()
		for i, have := range a.filters {
			if have == h {
				a.filters = append(a.filters[:i], a.filters[i+1:]...)
				return
			}
		}
	}
}

// Post enqueues an event for dispatch. Safe from any goroutine; the
// event is delivered on the Exec goroutine in arrival order.
func (a *App) Post(ev *events.Event) {
	a.queue.Send(ev)
}

// Exec runs the dispatch loop. It blocks until Quit, draining events
// already queued, and returns the exit code passed to Quit. The return
// value becomes the process exit status.
func (a *App) Exec() int {
	for {
		ev, ok := a.queue.Next()
		if !ok {
			return int(a.exitCode.Load())
		}
		a.dispatch(ev)
	}
}

// Quit requests termination of the dispatch loop with the given exit
// code. Events already queued are still dispatched. Only the first
// call's code wins.
func (a *App) Quit(code int) {
	a.quitOnce.Do(func() {
		a.exitCode.Store(int32(code))
		a.queue.Close()
	})
}

// dispatch offers the event to the global filters, then routes it to
// the main window.
func (a *App) dispatch(ev *events.Event) {
	a.filterMu.RLock()
	filters := make([]*filterHandle, len(a.filters))
	copy(filters, a.filters)
	a.filterMu.RUnlock()

	for _, h := range filters {
		if h.filter.FilterEvent(ev) {
			return
		}
	}
	if w := a.windows.Main(); w != nil {
		w.HandleEvent(ev)
	}
}
