package sprites

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sync/atomic"

	"github.com/cbodonnell/kangaroo/pkg/log"
)

// Sprite is an image decoded from disk in the background.
// Until decoding finishes, or if it fails, Image reports that nothing is ready
// and callers draw a placeholder instead.
type Sprite struct {
	path    string
	decoded atomic.Pointer[image.Image]
	done    chan struct{}
	err     error
}

// Load starts decoding the image at path and returns immediately.
func Load(path string) *Sprite {
	s := &Sprite{
		path: path,
		done: make(chan struct{}),
	}
	go s.decode()
	return s
}

func (s *Sprite) decode() {
	defer close(s.done)

	img, err := decodeFile(s.path)
	if err != nil {
		s.err = err
		log.Warn("Sprite %s unavailable, drawing placeholder: %v", s.path, err)
		return
	}
	s.decoded.Store(&img)
	log.Debug("Decoded sprite %s (%dx%d)", s.path, img.Bounds().Dx(), img.Bounds().Dy())
}

func decodeFile(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("no path configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %v", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	return img, nil
}

// Path returns the file the sprite is decoded from.
func (s *Sprite) Path() string {
	return s.path
}

// Image returns the decoded image once it is available.
func (s *Sprite) Image() (image.Image, bool) {
	img := s.decoded.Load()
	if img == nil {
		return nil, false
	}
	return *img, true
}

// State reports whether decoding has finished and, if so, why it failed.
func (s *Sprite) State() (bool, error) {
	select {
	case <-s.done:
		return true, s.err
	default:
		return false, nil
	}
}

// Status describes the decoding state for display.
func (s *Sprite) Status() string {
	done, err := s.State()
	switch {
	case !done:
		return "loading"
	case err != nil:
		return "placeholder"
	}
	return "ready"
}
