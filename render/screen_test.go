package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestStartupScreen(t *testing.T) {
	data, err := StartupScreen(1920, 720, "Connecting...\nVIN pending")
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Equal(t, 1920, w)
	assert.Equal(t, 720, h)
}

func TestErrorScreen(t *testing.T) {
	long := "The trust store bundle at /usr/etc/tls/cert.pem contained no parseable certificates so secure connections will fail until the vendor partition is reflashed"
	data, err := ErrorScreen(1280, 800, "Trust store degraded", long)
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)
}

func TestBlankScreen(t *testing.T) {
	data, err := BlankScreen(640, 480)
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 15)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15)
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitLines("a\nb"))
	assert.Equal(t, []string{"a"}, splitLines("a"))
	assert.Empty(t, splitLines(""))
}
