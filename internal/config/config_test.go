package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wireframe.yml")
	data := "width: 320\nheight: 240\nedge_color: 0x00ff00\nhud: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("canvas = %dx%d, want 320x240", cfg.Width, cfg.Height)
	}
	if cfg.EdgeColor != 0x00FF00 {
		t.Fatalf("edge_color = %#x", cfg.EdgeColor)
	}
	if cfg.HUD {
		t.Fatalf("hud should be overridden to false")
	}
	// Untouched keys keep their defaults.
	if cfg.CameraDistance != 5 || cfg.AngleStep != 0.02 {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadRejectsDegenerateFrustum(t *testing.T) {
	cases := []string{
		"near: 0\n",
		"near: 5\nfar: 5\n",
		"fov_degrees: 180\n",
		"width: 0\n",
	}
	for _, data := range cases {
		path := filepath.Join(t.TempDir(), "bad.yml")
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("config %q should be rejected", data)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("syntax error should be reported")
	}
}

func TestFOVYRad(t *testing.T) {
	got := float64(Default().FOVYRad())
	if math.Abs(got-math.Pi/3) > 1e-6 {
		t.Fatalf("fov = %v rad, want π/3", got)
	}
}
