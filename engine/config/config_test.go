package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidFileFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll(filepath.Dir(PrefsPath), 0755))
	require.NoError(t, os.WriteFile(PrefsPath, []byte("{not json"), 0644))

	p, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	p := Default()
	p.WindowTitle = "Custom"
	p.HoverScale = 1.4
	p.FlyToOffset = [3]float32{0, 0.5, 2}

	require.NoError(t, Save(p))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDefaultShowcaseConstants(t *testing.T) {
	p := Default()

	// Master loop: 100 frames at 24 fps.
	assert.InDelta(t, 100.0/24.0, p.MasterFrames/p.MasterFPS, 1e-5)

	assert.Equal(t, "Sign", p.SignMarker)
	assert.InDelta(t, 1.2, p.HoverScale, 1e-6)
	assert.InDelta(t, 0.15, p.HoverSmoothing, 1e-6)

	assert.Equal(t, [3]float32{0, 0.3, 1.5}, p.FlyToOffset)
	assert.InDelta(t, 2.0, p.FlyToSpeed, 1e-6)

	assert.InDelta(t, -0.6, p.TargetMinX, 1e-6)
	assert.InDelta(t, 0.6, p.TargetMaxX, 1e-6)
	assert.InDelta(t, 0.3, p.TargetMinY, 1e-6)
	assert.InDelta(t, 1.0, p.TargetMaxY, 1e-6)
}
