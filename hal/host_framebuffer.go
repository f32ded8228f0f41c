//go:build !tinygo

package hal

import "sync"

type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	pix    []uint32
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &hostFramebuffer{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatXRGB8888 }
func (f *hostFramebuffer) Pix() []uint32       { return f.pix }
func (f *hostFramebuffer) Present() error      { return nil }

func (f *hostFramebuffer) ClearPacked(c uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.pix {
		f.pix[i] = c
	}
}

// snapshot copies the completed frame for a display backend.
func (f *hostFramebuffer) snapshot(dst []uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.pix)
}
