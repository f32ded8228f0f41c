package hal

// PackRGB packs 8-bit channels into the 0x00RRGGBB framebuffer form.
func PackRGB(r, g, b uint8) uint32 {
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackRGB splits a 0x00RRGGBB pixel into 8-bit channels.
func UnpackRGB(p uint32) (r, g, b uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// RGB565FromPacked converts a packed pixel to 16bpp rrrrrggggggbbbbb,
// the wire format of small SPI displays.
func RGB565FromPacked(p uint32) uint16 {
	r, g, b := UnpackRGB(p)
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}
