package sprites

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})

	path := filepath.Join(t.TempDir(), "sprite.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func waitDone(t *testing.T, s *Sprite) error {
	t.Helper()
	require.Eventually(t, func() bool {
		done, _ := s.State()
		return done
	}, 5*time.Second, 10*time.Millisecond)
	_, err := s.State()
	return err
}

func TestLoad(t *testing.T) {
	path := writePNG(t, 4, 3)
	s := Load(path)
	assert.Equal(t, path, s.Path())

	require.NoError(t, waitDone(t, s))
	assert.Equal(t, "ready", s.Status())

	img, ok := s.Image()
	require.True(t, ok)
	assert.Equal(t, 4, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
}

func TestLoad_missing(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "missing.png"))

	assert.Error(t, waitDone(t, s))
	assert.Equal(t, "placeholder", s.Status())

	_, ok := s.Image()
	assert.False(t, ok)
}

func TestLoad_notAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sprite.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0o644))

	s := Load(path)
	assert.Error(t, waitDone(t, s))
}

func TestSprite_Status_loading(t *testing.T) {
	s := &Sprite{path: "pending.png", done: make(chan struct{})}

	done, err := s.State()
	assert.False(t, done)
	assert.NoError(t, err)
	assert.Equal(t, "loading", s.Status())
}
