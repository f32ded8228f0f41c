//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"
)

// TerminalConfig controls the VT100 display backend.
type TerminalConfig struct {
	Width  int
	Height int
	Hz     int
}

// RunTerminal renders the framebuffer into the controlling terminal using
// half-block cells (one character covers two vertically stacked pixels) and
// reads keys from raw-mode stdin. It blocks until the app requests shutdown
// or the context is canceled.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	stdin := int(os.Stdin.Fd())
	if !term.IsTerminal(stdin) {
		return errors.New("stdin is not a terminal")
	}
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}

	oldState, err := term.MakeRaw(stdin)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	defer term.Restore(stdin, oldState)

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)

	go readTerminalKeys(h.kbd)

	// Alternate screen, hidden cursor. Restored on exit.
	os.Stdout.WriteString("\x1b[?1049h\x1b[?25l")
	defer os.Stdout.WriteString("\x1b[0m\x1b[?25h\x1b[?1049l")

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	scratch := make([]uint32, len(h.fb.pix))
	var sb strings.Builder

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if errors.Is(err, ErrShutdown) {
						return nil
					}
					return err
				}
			}
			h.fb.snapshot(scratch)
			cols, rows, err := term.GetSize(stdin)
			if err != nil || cols <= 0 || rows <= 0 {
				continue
			}
			writeHalfBlockFrame(&sb, scratch, h.fb.width, h.fb.height, cols, rows)
			os.Stdout.WriteString(sb.String())
		}
	}
}

func readTerminalKeys(kbd *hostKeyboard) {
	buf := make([]byte, 64)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		for _, b := range buf[:n] {
			switch {
			case b == 0x1b || b == 0x03: // ESC or ctrl-c
				kbd.push(KeyEvent{Code: KeyEscape, Press: true})
			case b >= 0x20 && b < 0x7F:
				kbd.push(KeyEvent{Press: true, Rune: rune(b)})
			}
		}
	}
}

// writeHalfBlockFrame downsamples the pixel buffer into a cols x rows cell
// grid, two pixels per cell, and rebuilds sb with a full-frame escape
// sequence: home, then per cell a truecolor foreground (top pixel) and
// background (bottom pixel) followed by '▀'.
func writeHalfBlockFrame(sb *strings.Builder, pix []uint32, fbW, fbH, cols, rows int) {
	sb.Reset()
	sb.WriteString("\x1b[H")

	sample := func(cx, cy int) uint32 {
		x := cx * fbW / cols
		y := cy * fbH / (rows * 2)
		if x >= fbW {
			x = fbW - 1
		}
		if y >= fbH {
			y = fbH - 1
		}
		return pix[y*fbW+x]
	}

	for row := 0; row < rows; row++ {
		var lastTop, lastBot uint32 = 1 << 24, 1 << 24 // impossible packed values
		for col := 0; col < cols; col++ {
			top := sample(col, row*2)
			bot := sample(col, row*2+1)
			if top != lastTop || bot != lastBot {
				tr, tg, tb := UnpackRGB(top)
				br, bg, bb := UnpackRGB(bot)
				fmt.Fprintf(sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm", tr, tg, tb, br, bg, bb)
				lastTop, lastBot = top, bot
			}
			sb.WriteRune('▀')
		}
		sb.WriteString("\x1b[0m")
		if row != rows-1 {
			sb.WriteString("\r\n")
		}
	}
}
