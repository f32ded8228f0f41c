package wiregl

// Target is a minimal pixel target for software rendering.
//
// SetPixel is only called with in-bounds coordinates; the rasterizer clips
// before writing.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// BufferTarget is a Target over a flat packed-RGB pixel slice
// (row-major, one 0x00RRGGBB value per pixel).
type BufferTarget struct {
	Pix []uint32
	W   int
	H   int
}

// NewBufferTarget allocates a w*h packed-RGB target.
func NewBufferTarget(w, h int) *BufferTarget {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &BufferTarget{Pix: make([]uint32, w*h), W: w, H: h}
}

func (t *BufferTarget) Size() (int, int) { return t.W, t.H }

func (t *BufferTarget) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.W || y < 0 || y >= t.H {
		return
	}
	t.Pix[y*t.W+x] = c.Pack()
}

func (t *BufferTarget) Clear(c Color) {
	p := c.Pack()
	for i := range t.Pix {
		t.Pix[i] = p
	}
}

// At returns the packed pixel at (x, y), or 0 when out of bounds.
func (t *BufferTarget) At(x, y int) uint32 {
	if x < 0 || x >= t.W || y < 0 || y >= t.H {
		return 0
	}
	return t.Pix[y*t.W+x]
}
