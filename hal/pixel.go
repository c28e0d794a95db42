package hal

// RGB packs an 8-bit-per-channel colour into RGB565.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGB888 expands the colour to 8 bits per channel; full scale in each field
// maps to 0xFF.
func (c Color) RGB888() (r, g, b uint8) {
	r = uint8(uint32(c>>11&0x1F) * 255 / 31)
	g = uint8(uint32(c>>5&0x3F) * 255 / 63)
	b = uint8(uint32(c&0x1F) * 255 / 31)
	return r, g, b
}

// Bytes returns the pixel in panel byte order, low byte first.
func (c Color) Bytes() (lo, hi byte) { return byte(c), byte(c >> 8) }

func colorFromBytes(lo, hi byte) Color { return Color(lo) | Color(hi)<<8 }
