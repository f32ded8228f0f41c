// Package app drives the wireframe renderer against a HAL: it owns the
// selection and animation state, consumes keyboard input and produces one
// finished framebuffer per step.
package app

import (
	"wireframe/hal"
	"wireframe/internal/config"
	"wireframe/wiregl"
)

type App struct {
	h   hal.HAL
	fb  hal.Framebuffer
	tgt *fbTarget
	r   *wiregl.Renderer

	shape wiregl.Shape
	angle wiregl.Scalar
	step  wiregl.Scalar
	hud   bool
}

// New wires the renderer to the HAL's framebuffer. The shell calls Step
// once per frame tick.
func New(h hal.HAL, cfg config.Config) *App {
	r := wiregl.NewRenderer()
	r.ClearColor = wiregl.ColorFromPacked(cfg.Background)
	r.EdgeColor = wiregl.ColorFromPacked(cfg.EdgeColor)
	r.Camera = wiregl.Camera{
		FOVYRad:  cfg.FOVYRad(),
		Near:     cfg.Near,
		Far:      cfg.Far,
		Distance: cfg.CameraDistance,
	}
	r.SpinXRate = cfg.SpinXRate

	fb := h.Display().Framebuffer()
	return &App{
		h:     h,
		fb:    fb,
		tgt:   newFBTarget(fb),
		r:     r,
		shape: wiregl.ShapeCube,
		step:  cfg.AngleStep,
		hud:   cfg.HUD,
	}
}

// Step runs one frame: input, clear+transform+rasterize, HUD overlay,
// present. The whole sequence completes before it returns; the only
// cancellation point the shells have is between steps.
func (a *App) Step() error {
	if err := a.handleInput(); err != nil {
		return err
	}

	a.r.RenderFrame(a.tgt, a.shape, a.angle)
	if a.hud {
		a.drawHUD()
	}
	a.angle += a.step

	return a.fb.Present()
}

func (a *App) handleInput() error {
	kbd := a.h.Input().Keyboard()
	if kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			if ev.Code == hal.KeyEscape || ev.Rune == 'q' {
				return hal.ErrShutdown
			}
			if ev.Rune >= '1' && ev.Rune < '1'+rune(wiregl.NumShapes) {
				next := wiregl.Shape(ev.Rune - '1')
				if next != a.shape {
					a.shape = next
					a.h.Logger().WriteLineString("shape: " + next.String())
				}
			}
		default:
			return nil
		}
	}
}
