package hal

import "testing"

func TestPackUnpackRGB(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		packed  uint32
	}{
		{0, 0, 0, 0x000000},
		{0xFF, 0xFF, 0xFF, 0xFFFFFF},
		{0x12, 0x34, 0x56, 0x123456},
	}
	for _, tc := range cases {
		if got := PackRGB(tc.r, tc.g, tc.b); got != tc.packed {
			t.Fatalf("pack(%x,%x,%x) = %#x, want %#x", tc.r, tc.g, tc.b, got, tc.packed)
		}
		r, g, b := UnpackRGB(tc.packed)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("unpack(%#x) = %x,%x,%x", tc.packed, r, g, b)
		}
	}
}

func TestRGB565FromPacked(t *testing.T) {
	if got := RGB565FromPacked(0xFFFFFF); got != 0xFFFF {
		t.Fatalf("white = %#x, want 0xffff", got)
	}
	if got := RGB565FromPacked(0x000000); got != 0 {
		t.Fatalf("black = %#x, want 0", got)
	}
	if got := RGB565FromPacked(0xFF0000); got != 0xF800 {
		t.Fatalf("red = %#x, want 0xf800", got)
	}
	if got := RGB565FromPacked(0x00FF00); got != 0x07E0 {
		t.Fatalf("green = %#x, want 0x07e0", got)
	}
	if got := RGB565FromPacked(0x0000FF); got != 0x001F {
		t.Fatalf("blue = %#x, want 0x001f", got)
	}
}
