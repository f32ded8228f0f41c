package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrShutdown is returned by an app step to request a clean exit.
var ErrShutdown = errors.New("shutdown requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatXRGB8888 is one uint32 per pixel: 0x00RRGGBB.
	PixelFormatXRGB8888 PixelFormat = iota + 1
)

// Framebuffer is a fixed-size pixel buffer plus a "present" hook.
//
// The buffer is owned by the renderer during a frame; display backends read
// a completed frame, they never mutate it.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Pix() []uint32
	ClearPacked(c uint32)
	Present() error
}

// KeyCode is a minimal key identifier for non-rune keys.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
)

// KeyEvent is a keyboard event. Printable input arrives as Rune with
// Code == KeyUnknown.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices.
type Input interface {
	Keyboard() Keyboard
}

// HAL is the only contact point between the renderer app and the platform.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
