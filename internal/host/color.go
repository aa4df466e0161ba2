package host

// Color is the host color representation with separate channels.
type Color struct {
	A uint8
	R uint8
	G uint8
	B uint8
}

// ColorFromARGB converts a packed 0xAARRGGBB integer into a Color.
func ColorFromARGB(argb uint32) Color {
	return Color{
		A: uint8(argb >> 24),
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
	}
}

// ARGB packs the color back into 0xAARRGGBB form.
func (c Color) ARGB() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
