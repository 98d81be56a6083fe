package display

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roadhud/roadhud-go/config"
	"github.com/roadhud/roadhud-go/events"
	"github.com/roadhud/roadhud-go/platform"
	"github.com/roadhud/roadhud-go/render"
)

func newTestWindow(t *testing.T) *MainWindow {
	t.Helper()
	cfg := &config.Config{TranslationsDir: "translations"}
	board := platform.Virtual
	return newMainWindow(test.NewApp(), cfg, &board, "Connecting...")
}

func TestWindowGeometryFromBoard(t *testing.T) {
	w := newTestWindow(t)
	assert.Equal(t, platform.Virtual.Width, w.width)
	assert.Equal(t, platform.Virtual.Height, w.height)
}

func TestWindowGeometryFromConfig(t *testing.T) {
	cfg := &config.Config{WindowWidth: 640, WindowHeight: 480}
	board := platform.Virtual
	w := newMainWindow(test.NewApp(), cfg, &board, "")
	assert.Equal(t, 640, w.width)
	assert.Equal(t, 480, w.height)
}

func TestBlankAndWakeThroughRouting(t *testing.T) {
	w := newTestWindow(t)
	assert.False(t, w.Blanked())

	w.HandleEvent(events.New(events.TypeSleep))
	assert.True(t, w.Blanked())

	w.HandleEvent(events.New(events.TypeWake))
	assert.False(t, w.Blanked())
}

func TestFilterWakesOnInputWhileBlanked(t *testing.T) {
	w := newTestWindow(t)
	w.HandleEvent(events.New(events.TypeSleep))
	require.True(t, w.Blanked())

	// First input wakes the panel and is consumed.
	consumed := w.FilterEvent(events.NewTouch(events.TypeTouchPress, 5, 5))
	assert.True(t, consumed)
	assert.False(t, w.Blanked())

	// Subsequent input passes through untouched.
	consumed = w.FilterEvent(events.NewTouch(events.TypeTouchRelease, 5, 5))
	assert.False(t, consumed)
}

func TestFilterIgnoresNonInputEvents(t *testing.T) {
	w := newTestWindow(t)
	w.HandleEvent(events.New(events.TypeSleep))

	assert.False(t, w.FilterEvent(events.New(events.TypeCustom)))
	assert.True(t, w.Blanked())
}

func TestUpdateFrameRestoredAfterWake(t *testing.T) {
	w := newTestWindow(t)

	frame, err := render.StartupScreen(w.width, w.height, "frame")
	require.NoError(t, err)
	require.NoError(t, w.UpdateFrame(frame))

	w.HandleEvent(events.New(events.TypeSleep))

	// Frames pushed while blanked are remembered, not shown.
	frame2, err := render.ErrorScreen(w.width, w.height, "X", "Y")
	require.NoError(t, err)
	require.NoError(t, w.UpdateFrame(frame2))

	w.HandleEvent(events.New(events.TypeWake))
	assert.False(t, w.Blanked())
}

func TestShowErrorReplacesFrame(t *testing.T) {
	w := newTestWindow(t)
	w.ShowError("Connection Error", "Could not reach the fleet endpoint")
	assert.NotNil(t, w.frame.Image)
}

func TestCloseFromBackgroundGoroutine(t *testing.T) {
	w := newTestWindow(t)
	done := make(chan struct{})
	w.SetOnClosed(func() { close(done) })

	go w.Close()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("window did not close")
	}
}

func TestUpdateFrameRejectsGarbage(t *testing.T) {
	w := newTestWindow(t)
	assert.Error(t, w.UpdateFrame([]byte("not an image")))
}
