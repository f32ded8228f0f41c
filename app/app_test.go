package app

import (
	"errors"
	"testing"

	"wireframe/hal"
	"wireframe/internal/config"
	"wireframe/wiregl"
)

// testHAL is an in-memory HAL: a plain framebuffer, an injectable keyboard
// and a discard logger.
type testHAL struct {
	fb  *testFramebuffer
	kbd *testKeyboard
	log []string
}

func newTestHAL(w, h int) *testHAL {
	return &testHAL{
		fb:  &testFramebuffer{w: w, h: h, pix: make([]uint32, w*h)},
		kbd: &testKeyboard{ch: make(chan hal.KeyEvent, 8)},
	}
}

func (t *testHAL) Logger() hal.Logger   { return (*testLogger)(t) }
func (t *testHAL) Display() hal.Display { return t }
func (t *testHAL) Input() hal.Input     { return t }

func (t *testHAL) Framebuffer() hal.Framebuffer { return t.fb }
func (t *testHAL) Keyboard() hal.Keyboard       { return t.kbd }

type testLogger testHAL

func (l *testLogger) WriteLineString(s string) { l.log = append(l.log, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.log = append(l.log, string(b)) }

type testFramebuffer struct {
	w, h     int
	pix      []uint32
	presents int
}

func (f *testFramebuffer) Width() int                { return f.w }
func (f *testFramebuffer) Height() int               { return f.h }
func (f *testFramebuffer) Format() hal.PixelFormat   { return hal.PixelFormatXRGB8888 }
func (f *testFramebuffer) Pix() []uint32             { return f.pix }
func (f *testFramebuffer) Present() error          { f.presents++; return nil }

func (f *testFramebuffer) ClearPacked(c uint32) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

type testKeyboard struct {
	ch chan hal.KeyEvent
}

func (k *testKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Width = 64
	cfg.Height = 64
	cfg.HUD = false
	return cfg
}

func countLit(pix []uint32) int {
	n := 0
	for _, p := range pix {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestStepRendersAndPresents(t *testing.T) {
	h := newTestHAL(64, 64)
	a := New(h, testConfig())

	if err := a.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if h.fb.presents != 1 {
		t.Fatalf("presents = %d, want 1", h.fb.presents)
	}
	if countLit(h.fb.pix) == 0 {
		t.Fatalf("frame drew nothing")
	}
}

func TestStepAdvancesAnimation(t *testing.T) {
	h := newTestHAL(64, 64)
	a := New(h, testConfig())

	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	first := make([]uint32, len(h.fb.pix))
	copy(first, h.fb.pix)

	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range first {
		if first[i] != h.fb.pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("consecutive frames identical; angle did not advance")
	}
}

func TestKeySwitchesShape(t *testing.T) {
	h := newTestHAL(64, 64)
	cfg := testConfig()
	a := New(h, cfg)

	if err := a.Step(); err != nil {
		t.Fatal(err)
	}

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: '2'}
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.shape != wiregl.ShapePyramid {
		t.Fatalf("shape = %v, want pyramid", a.shape)
	}

	// The reused buffer must match a fresh pyramid render at the same
	// angle: no residue from the cube frame survives the clear.
	want := wiregl.NewBufferTarget(64, 64)
	r := wiregl.NewRenderer()
	r.RenderFrame(want, wiregl.ShapePyramid, cfg.AngleStep)
	for i := range want.Pix {
		if h.fb.pix[i] != want.Pix[i] {
			t.Fatalf("residual pixel %d after shape switch", i)
		}
	}
}

func TestKeyReleaseIgnored(t *testing.T) {
	h := newTestHAL(32, 32)
	a := New(h, testConfig())

	h.kbd.ch <- hal.KeyEvent{Press: false, Rune: '3'}
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if a.shape != wiregl.ShapeCube {
		t.Fatalf("release event changed shape to %v", a.shape)
	}
}

func TestEscapeRequestsShutdown(t *testing.T) {
	h := newTestHAL(32, 32)
	a := New(h, testConfig())

	h.kbd.ch <- hal.KeyEvent{Code: hal.KeyEscape, Press: true}
	if err := a.Step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("err = %v, want ErrShutdown", err)
	}

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: 'q'}
	if err := a.Step(); !errors.Is(err, hal.ErrShutdown) {
		t.Fatalf("err = %v, want ErrShutdown for q", err)
	}
}

func TestShapeSwitchLogged(t *testing.T) {
	h := newTestHAL(32, 32)
	a := New(h, testConfig())

	h.kbd.ch <- hal.KeyEvent{Press: true, Rune: '3'}
	if err := a.Step(); err != nil {
		t.Fatal(err)
	}
	if len(h.log) != 1 || h.log[0] != "shape: octahedron" {
		t.Fatalf("log = %v", h.log)
	}
}

func TestHUDOverlayWritesPixels(t *testing.T) {
	cfg := testConfig()
	cfg.HUD = true
	h := newTestHAL(128, 64)
	a := New(h, cfg)

	if err := a.Step(); err != nil {
		t.Fatal(err)
	}

	bare := testConfig()
	bare.Width, bare.Height = 128, 64
	h2 := newTestHAL(128, 64)
	if err := New(h2, bare).Step(); err != nil {
		t.Fatal(err)
	}

	if countLit(h.fb.pix) <= countLit(h2.fb.pix) {
		t.Fatalf("HUD overlay added no pixels")
	}
}
