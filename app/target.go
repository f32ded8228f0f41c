package app

import (
	"wireframe/hal"
	"wireframe/wiregl"
)

// fbTarget adapts a hal.Framebuffer to the renderer's Target.
type fbTarget struct {
	fb  hal.Framebuffer
	w   int
	h   int
	pix []uint32
}

func newFBTarget(fb hal.Framebuffer) *fbTarget {
	return &fbTarget{
		fb:  fb,
		w:   fb.Width(),
		h:   fb.Height(),
		pix: fb.Pix(),
	}
}

func (t *fbTarget) Size() (int, int) { return t.w, t.h }

func (t *fbTarget) SetPixel(x, y int, c wiregl.Color) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.pix[y*t.w+x] = c.Pack()
}

func (t *fbTarget) Clear(c wiregl.Color) {
	t.fb.ClearPacked(c.Pack())
}
