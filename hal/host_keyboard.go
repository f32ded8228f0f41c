//go:build !tinygo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// poll runs once per ebiten Update on the window path.
func (k *hostKeyboard) poll() {
	emit := func(e KeyEvent) {
		select {
		case k.ch <- e:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	// Digits are also reported by key so selection works with any layout.
	digits := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for i, key := range digits {
		if inpututil.IsKeyJustPressed(key) {
			emit(KeyEvent{Press: true, Rune: rune('1' + i)})
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		emit(KeyEvent{Code: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		emit(KeyEvent{Code: KeyEscape, Press: false})
	}
}

// push injects an event from a non-ebiten backend (terminal, tests).
func (k *hostKeyboard) push(e KeyEvent) {
	select {
	case k.ch <- e:
	default:
	}
}
