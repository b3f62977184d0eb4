package render

import (
	"errors"
	"fmt"
	"sync"
)

// ErrSurfaceSize is returned by Swap when the back buffer no longer matches
// the surface size.
var ErrSurfaceSize = errors.New("render: back buffer size mismatch")

// Surface is a double-buffered drawing target. The engine draws into Back
// and calls Swap; the native window reads Front from its own goroutine.
type Surface struct {
	mu     sync.Mutex
	w, h   int
	front  *FrameBuffer
	back   *FrameBuffer
	frames uint64
}

func NewSurface(w, h int) *Surface {
	s := &Surface{}
	s.Resize(w, h)
	return s
}

// Resize reallocates both buffers. Contents are discarded.
func (s *Surface) Resize(w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.front = NewFrameBuffer(w, h)
	s.back = NewFrameBuffer(w, h)
	s.w, s.h = s.front.W, s.front.H
}

func (s *Surface) Size() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// Back returns the buffer to draw the next frame into.
func (s *Surface) Back() *FrameBuffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.back
}

// Swap exchanges the front and back buffers.
func (s *Surface) Swap() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.back.W != s.w || s.back.H != s.h {
		return fmt.Errorf("%w: have %dx%d, want %dx%d", ErrSurfaceSize, s.back.W, s.back.H, s.w, s.h)
	}
	s.front, s.back = s.back, s.front
	s.frames++
	return nil
}

// Frames reports how many successful swaps have happened.
func (s *Surface) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// ReadFront calls fn with the presented frame while holding the surface lock.
func (s *Surface) ReadFront(fn func(fb *FrameBuffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.front)
}
