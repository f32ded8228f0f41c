//go:build !tinygo

package hal

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"wireframe/internal/buildinfo"
)

// RunWindow opens a desktop window that displays the framebuffer and
// forwards keyboard input. It blocks until the window closes or the app
// step returns ErrShutdown.
func RunWindow(newApp func(HAL) func() error, width, height int) error {
	h := New(width, height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("wireframe (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	rgba    []byte
	scratch []uint32
	step    func() error
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrShutdown) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.rgba = make([]byte, fb.width*fb.height*4)
		g.scratch = make([]uint32, len(fb.pix))
	}

	fb.snapshot(g.scratch)
	for i, p := range g.scratch {
		r, gg, b := UnpackRGB(p)
		j := i * 4
		g.rgba[j+0] = r
		g.rgba[j+1] = gg
		g.rgba[j+2] = b
		g.rgba[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.rgba)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
