// Package config holds renderer settings. On host builds an optional YAML
// file is loaded over the defaults (see Load); embedded builds use the
// defaults directly.
package config

import (
	"fmt"
	"math"
)

// Config is the full set of tunables the renderer and shells consume.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	FOVDegrees     float32 `yaml:"fov_degrees"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	CameraDistance float32 `yaml:"camera_distance"`

	// AngleStep is the per-frame rotation increment in radians; animation
	// speed is frame-count based, so it scales with the achieved frame rate.
	AngleStep float32 `yaml:"angle_step"`
	SpinXRate float32 `yaml:"spin_x_rate"`

	Background uint32 `yaml:"background"`
	EdgeColor  uint32 `yaml:"edge_color"`

	HUD bool `yaml:"hud"`
}

// Default returns the stock configuration: an 800x600 canvas, a 60° frustum
// between 0.1 and 100 with the object 5 units out, 0.02 rad/frame with the
// X axis tumbling at 1.3x, white edges on black.
func Default() Config {
	return Config{
		Width:          800,
		Height:         600,
		FOVDegrees:     60,
		Near:           0.1,
		Far:            100,
		CameraDistance: 5,
		AngleStep:      0.02,
		SpinXRate:      1.3,
		Background:     0x000000,
		EdgeColor:      0xFFFFFF,
		HUD:            true,
	}
}

// FOVYRad returns the field of view in radians.
func (c Config) FOVYRad() float32 {
	return c.FOVDegrees * math.Pi / 180
}

// validate rejects values the projection math cannot represent. The core
// never checks these (degenerate frusta are a caller precondition there);
// the config layer is the caller, so it checks.
func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas %dx%d is not positive", c.Width, c.Height)
	}
	if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees %v outside (0, 180)", c.FOVDegrees)
	}
	if c.Near <= 0 || c.Far <= c.Near {
		return fmt.Errorf("frustum near=%v far=%v is degenerate", c.Near, c.Far)
	}
	if c.Background > 0xFFFFFF || c.EdgeColor > 0xFFFFFF {
		return fmt.Errorf("colors must be packed 0xRRGGBB")
	}
	return nil
}
