//go:build tinygo

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

// Panel size of the ILI9341 in landscape orientation.
const (
	panelWidth  = 320
	panelHeight = 240
)

type tinygoHAL struct {
	logger *serialLogger
	fb     *tinygoFramebuffer
	kbd    *serialKeyboard
}

// New returns the embedded HAL. The requested size is ignored: the
// framebuffer always matches the panel.
func New(width, height int) HAL {
	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP2,
		SDO:       machine.GP3,
		SDI:       machine.GP4,
		Frequency: 40_000_000,
	})

	display := ili9341.NewSPI(machine.SPI0, machine.GP6, machine.GP5, machine.GP7)
	display.Configure(ili9341.Config{})
	display.SetRotation(ili9341.Rotation270)

	kbd := &serialKeyboard{ch: make(chan KeyEvent, 16)}
	go kbd.readSerial()

	return &tinygoHAL{
		logger: &serialLogger{},
		fb:     newTinygoFramebuffer(display),
		kbd:    kbd,
	}
}

func (h *tinygoHAL) Logger() Logger   { return h.logger }
func (h *tinygoHAL) Display() Display { return tinygoDisplay{fb: h.fb} }
func (h *tinygoHAL) Input() Input     { return tinygoInput{kbd: h.kbd} }

type tinygoDisplay struct {
	fb *tinygoFramebuffer
}

func (d tinygoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinygoInput struct {
	kbd *serialKeyboard
}

func (in tinygoInput) Keyboard() Keyboard { return in.kbd }

type serialLogger struct{}

func (l *serialLogger) WriteLineString(s string) { println(s) }
func (l *serialLogger) WriteLineBytes(b []byte)  { println(string(b)) }

// serialKeyboard turns bytes from the USB serial console into key events.
type serialKeyboard struct {
	ch chan KeyEvent
}

func (k *serialKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *serialKeyboard) readSerial() {
	for {
		b, err := machine.Serial.ReadByte()
		if err != nil {
			continue
		}
		var ev KeyEvent
		switch {
		case b == 0x1b || b == 0x03:
			ev = KeyEvent{Code: KeyEscape, Press: true}
		case b >= 0x20 && b < 0x7F:
			ev = KeyEvent{Press: true, Rune: rune(b)}
		default:
			continue
		}
		select {
		case k.ch <- ev:
		default:
		}
	}
}

type tinygoFramebuffer struct {
	display *ili9341.Device
	pix     []uint32
	wire    []uint8 // RGB565 staging buffer for the SPI push
}

func newTinygoFramebuffer(d *ili9341.Device) *tinygoFramebuffer {
	return &tinygoFramebuffer{
		display: d,
		pix:     make([]uint32, panelWidth*panelHeight),
		wire:    make([]uint8, panelWidth*panelHeight*2),
	}
}

func (f *tinygoFramebuffer) Width() int          { return panelWidth }
func (f *tinygoFramebuffer) Height() int         { return panelHeight }
func (f *tinygoFramebuffer) Format() PixelFormat { return PixelFormatXRGB8888 }
func (f *tinygoFramebuffer) Pix() []uint32       { return f.pix }

func (f *tinygoFramebuffer) ClearPacked(c uint32) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

func (f *tinygoFramebuffer) Present() error {
	for i, p := range f.pix {
		v := RGB565FromPacked(p)
		f.wire[i*2] = uint8(v >> 8)
		f.wire[i*2+1] = uint8(v)
	}
	return f.display.DrawRGBBitmap8(0, 0, f.wire, panelWidth, panelHeight)
}
