package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadhud/roadhud-go/display"
	"github.com/roadhud/roadhud-go/events"
	"github.com/roadhud/roadhud-go/i18n"
)

type fakeWindow struct {
	title    string
	handled  []*events.Event
	filtered []*events.Event
	consume  func(ev *events.Event) bool
	closed   bool
	onClosed func()
}

func (w *fakeWindow) Title() string                   { return w.title }
func (w *fakeWindow) HandleEvent(ev *events.Event)    { w.handled = append(w.handled, ev) }
func (w *fakeWindow) Show()                           {}
func (w *fakeWindow) Close()                          { w.closed = true }
func (w *fakeWindow) SetOnClosed(fn func())           { w.onClosed = fn }
func (w *fakeWindow) FilterEvent(ev *events.Event) bool {
	w.filtered = append(w.filtered, ev)
	if w.consume != nil {
		return w.consume(ev)
	}
	return false
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	Reset()
	t.Cleanup(Reset)
	a, err := New([]string{"roadhud"})
	require.NoError(t, err)
	return a
}

func TestNewExactlyOnce(t *testing.T) {
	a := newTestApp(t)
	assert.Same(t, a, TheApp())

	_, err := New(nil)
	assert.Error(t, err)
}

func TestArgsPassThrough(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	a, err := New([]string{"roadhud", "-verbose"})
	require.NoError(t, err)
	assert.Equal(t, []string{"roadhud", "-verbose"}, a.Args())
}

func TestShareContextsSnapshotAtConstruction(t *testing.T) {
	display.SetShareContexts(true)
	t.Cleanup(func() { display.SetShareContexts(false) })

	a := newTestApp(t)
	assert.True(t, a.ShareContexts())

	// Setting the policy after construction has no effect.
	display.SetShareContexts(false)
	assert.True(t, a.ShareContexts())
}

func TestExecDispatchesInArrivalOrder(t *testing.T) {
	a := newTestApp(t)
	w := &fakeWindow{title: "main"}
	a.Windows().SetMain(w)

	first := events.NewTouch(events.TypeTouchPress, 1, 1)
	second := events.NewTouch(events.TypeTouchRelease, 1, 1)
	a.Post(first)
	a.Post(second)
	a.Quit(0)

	code := a.Exec()
	assert.Equal(t, 0, code)
	require.Len(t, w.handled, 2)
	assert.Same(t, first, w.handled[0])
	assert.Same(t, second, w.handled[1])
}

func TestFiltersOfferedBeforeRouting(t *testing.T) {
	a := newTestApp(t)
	w := &fakeWindow{title: "main"}
	a.Windows().SetMain(w)

	var order []string
	a.InstallEventFilter(events.FilterFunc(func(ev *events.Event) bool {
		order = append(order, "first")
		return false
	}))
	a.InstallEventFilter(events.FilterFunc(func(ev *events.Event) bool {
		order = append(order, "second")
		return false
	}))

	a.Post(events.New(events.TypeWake))
	a.Quit(0)
	a.Exec()

	assert.Equal(t, []string{"first", "second"}, order)
	assert.Len(t, w.handled, 1)
}

func TestConsumedEventNotRouted(t *testing.T) {
	a := newTestApp(t)
	w := &fakeWindow{title: "main", consume: func(ev *events.Event) bool {
		return ev.Type == events.TypeKeyPress
	}}
	a.Windows().SetMain(w)
	a.InstallEventFilter(w)

	a.Post(events.NewKey("power"))
	a.Post(events.New(events.TypeWake))
	a.Quit(0)
	a.Exec()

	// Both events were offered to the filter; only the unconsumed one
	// reached normal routing.
	assert.Len(t, w.filtered, 2)
	require.Len(t, w.handled, 1)
	assert.Equal(t, events.TypeWake, w.handled[0].Type)
}

func TestUnregisterEventFilter(t *testing.T) {
	a := newTestApp(t)
	var count int
	f := events.FilterFunc(func(ev *events.Event) bool {
		count++
		return false
	})
	remove := a.InstallEventFilter(f)
	remove()
	remove() // second call is a no-op

	a.Post(events.New(events.TypeWake))
	a.Quit(0)
	a.Exec()
	assert.Zero(t, count)
}

func TestUnregisterOneOfTwoIdenticalFilters(t *testing.T) {
	a := newTestApp(t)
	var count int
	f := events.FilterFunc(func(ev *events.Event) bool {
		count++
		return false
	})
	a.InstallEventFilter(f)
	remove := a.InstallEventFilter(f)
	remove()

	a.Post(events.New(events.TypeWake))
	a.Quit(0)
	a.Exec()
	assert.Equal(t, 1, count)
}

func TestQuitCodePropagated(t *testing.T) {
	a := newTestApp(t)
	a.Quit(3)
	a.Quit(5) // later codes ignored
	assert.Equal(t, 3, a.Exec())
}

func TestEventsPostedAfterQuitDropped(t *testing.T) {
	a := newTestApp(t)
	w := &fakeWindow{title: "main"}
	a.Windows().SetMain(w)

	a.Quit(0)
	a.Post(events.New(events.TypeWake))
	a.Exec()
	assert.Empty(t, w.handled)
}

func TestTranslatorInstall(t *testing.T) {
	a := newTestApp(t)
	assert.Nil(t, a.Translator())
	assert.Equal(t, "startup.connecting", a.T("startup.connecting"))

	var tr *i18n.Translator
	a.InstallTranslator(tr)
	assert.Equal(t, "startup.connecting", a.T("startup.connecting"))
}

func TestRegistry(t *testing.T) {
	var r Registry
	assert.Nil(t, r.Main())

	w1 := &fakeWindow{title: "main"}
	w2 := &fakeWindow{title: "settings"}
	r.SetMain(w1)
	r.Add(w2)

	assert.Same(t, w1, r.Main())
	assert.Len(t, r.Windows(), 2)

	r.Remove(w1)
	assert.Nil(t, r.Main())
	require.Len(t, r.Windows(), 1)
	assert.Equal(t, "settings", r.Windows()[0].Title())
}
