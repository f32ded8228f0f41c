package app

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"wireframe/hal"
)

var hudFont = &proggy.TinySZ8pt7b

func (a *App) drawHUD() {
	d := &fbDisplayer{fb: a.fb}
	c := color.RGBA{R: 0xB0, G: 0xC0, B: 0xD0, A: 0xFF}
	tinyfont.WriteLine(d, hudFont, 6, 14, a.shape.String(), color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF})
	tinyfont.WriteLine(d, hudFont, 6, 28, "1-3 shape  q/ESC quit", c)
}

// fbDisplayer exposes the framebuffer as a tinyfont drawing surface.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	w := d.fb.Width()
	h := d.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}
	d.fb.Pix()[iy*w+ix] = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func (d *fbDisplayer) Display() error { return nil }
