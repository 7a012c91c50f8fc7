package record

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dendrite/internal/render"
	"dendrite/internal/sim"
)

func TestRecordSessionProducesAVI(t *testing.T) {
	s := sim.NewSeeded(64, 64, 1)
	s.ResetWithSeed(sim.SeedBlock)
	lut := render.SchemeFire.BuildLUT()

	path := filepath.Join(t.TempDir(), "out.avi")
	r := New()
	require.False(t, r.Recording())

	require.NoError(t, r.Start(path, s.Width(), s.Height()))
	require.True(t, r.Recording())
	assert.Equal(t, path, r.Path())

	for i := 0; i < 5; i++ {
		require.NoError(t, r.CaptureFrame(s, lut, true, sim.ColorByAge, false))
	}
	assert.Equal(t, 5, r.Frames())

	got, err := r.Stop()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.False(t, r.Recording())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestStartWhileRecordingFails(t *testing.T) {
	dir := t.TempDir()
	r := New()
	require.NoError(t, r.Start(filepath.Join(dir, "a.avi"), 64, 64))
	assert.Error(t, r.Start(filepath.Join(dir, "b.avi"), 64, 64))
	_, err := r.Stop()
	require.NoError(t, err)
}

func TestCaptureAndStopWhenIdle(t *testing.T) {
	s := sim.NewSeeded(64, 64, 1)
	lut := render.SchemeMono.BuildLUT()

	r := New()
	assert.Error(t, r.CaptureFrame(s, lut, true, sim.ColorByAge, false))
	_, err := r.Stop()
	assert.Error(t, err)
	assert.False(t, r.ShouldCapture())
}

func TestPacerLimitsCaptureRate(t *testing.T) {
	p := newPacer(30)

	// The accumulator is primed so the first query fires immediately.
	assert.True(t, p.shouldCapture())

	// Back-to-back queries inside one interval must not fire.
	assert.False(t, p.shouldCapture())
}

func TestPacerRecoversAfterAnInterval(t *testing.T) {
	p := newPacer(30)
	p.shouldCapture()
	p.shouldCapture()

	// Simulate a full frame interval elapsing.
	p.last = time.Now().Add(-p.step)
	assert.True(t, p.shouldCapture())
}
