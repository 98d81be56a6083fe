package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBoard(t *testing.T) {
	tests := []struct {
		name    string
		board   string
		wantErr bool
	}{
		{"production unit", "hud-one", false},
		{"case insensitive", "HUD-One", false},
		{"devkit", "devkit", false},
		{"virtual", "virtual", false},
		{"unknown", "hud-nine", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := GetBoard(tt.board)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, b.Width)
			assert.NotZero(t, b.Height)
		})
	}
}

func TestCapabilitySets(t *testing.T) {
	assert.True(t, HUDOne.Has(CapSharedGLContext))
	assert.True(t, HUDOne.Has(CapTrustStoreOverride))
	assert.True(t, HUDClassic.Has(CapTrustStoreOverride))

	assert.False(t, Devkit.Has(CapSharedGLContext))
	assert.False(t, Devkit.Has(CapTrustStoreOverride))
	assert.True(t, Devkit.Has(CapBacklightControl))

	assert.False(t, Virtual.Has(CapSharedGLContext))
	assert.False(t, Virtual.Has(CapTrustStoreOverride))
}

func TestDetectEnvOverride(t *testing.T) {
	t.Setenv("ROADHUD_BOARD", "hud-classic")
	b := detect(t.TempDir())
	assert.Equal(t, "hud-classic", b.Board)
}

func TestDetectMarkerFile(t *testing.T) {
	t.Setenv("ROADHUD_BOARD", "")
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "etc/roadhud-board"), []byte("hud-one\n"), 0o644))

	b := detect(root)
	assert.Equal(t, "hud-one", b.Board)
	assert.True(t, b.Has(CapTrustStoreOverride))
}

func TestDetectFallsBackToVirtual(t *testing.T) {
	t.Setenv("ROADHUD_BOARD", "")
	b := detect(t.TempDir())
	assert.Equal(t, "virtual", b.Board)
	assert.Empty(t, b.Capabilities)
}

func TestDetectBadMarkerFallsBack(t *testing.T) {
	t.Setenv("ROADHUD_BOARD", "")
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "etc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "etc/roadhud-board"), []byte("not-a-board"), 0o644))

	b := detect(root)
	assert.Equal(t, "virtual", b.Board)
}

func TestDetectCachedForProcessLifetime(t *testing.T) {
	first := Detect()
	second := Detect()
	assert.Same(t, first, second)
}
