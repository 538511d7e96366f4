package ppu

import "image/color"

// SystemPalette is the fixed NTSC 64-entry NES hardware palette.
// FrameBuffer entries are indices into this table; a host converts
// them to RGB only when presenting a frame.
var SystemPalette = [64]color.RGBA{
	{R: 0x62, G: 0x62, B: 0x62, A: 0xFF}, {R: 0x00, G: 0x1F, B: 0xB2, A: 0xFF}, {R: 0x24, G: 0x04, B: 0xC8, A: 0xFF}, {R: 0x52, G: 0x00, B: 0xB2, A: 0xFF},
	{R: 0x73, G: 0x00, B: 0x76, A: 0xFF}, {R: 0x80, G: 0x00, B: 0x24, A: 0xFF}, {R: 0x73, G: 0x0B, B: 0x00, A: 0xFF}, {R: 0x52, G: 0x28, B: 0x00, A: 0xFF},
	{R: 0x24, G: 0x44, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x57, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x5C, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x53, B: 0x24, A: 0xFF},
	{R: 0x00, G: 0x3C, B: 0x76, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},

	{R: 0xAB, G: 0xAB, B: 0xAB, A: 0xFF}, {R: 0x0D, G: 0x57, B: 0xFF, A: 0xFF}, {R: 0x4B, G: 0x30, B: 0xFF, A: 0xFF}, {R: 0x8A, G: 0x13, B: 0xFF, A: 0xFF},
	{R: 0xBC, G: 0x08, B: 0xD6, A: 0xFF}, {R: 0xD2, G: 0x12, B: 0x69, A: 0xFF}, {R: 0xC7, G: 0x2E, B: 0x00, A: 0xFF}, {R: 0x9D, G: 0x54, B: 0x00, A: 0xFF},
	{R: 0x60, G: 0x7B, B: 0x00, A: 0xFF}, {R: 0x20, G: 0x98, B: 0x00, A: 0xFF}, {R: 0x00, G: 0xA3, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x99, B: 0x42, A: 0xFF},
	{R: 0x00, G: 0x7D, B: 0xB4, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},

	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, {R: 0x53, G: 0xAE, B: 0xFF, A: 0xFF}, {R: 0x90, G: 0x85, B: 0xFF, A: 0xFF}, {R: 0xD3, G: 0x65, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x57, B: 0xFF, A: 0xFF}, {R: 0xFF, G: 0x5D, B: 0xCF, A: 0xFF}, {R: 0xFF, G: 0x77, B: 0x57, A: 0xFF}, {R: 0xFA, G: 0x9E, B: 0x00, A: 0xFF},
	{R: 0xBD, G: 0xC7, B: 0x00, A: 0xFF}, {R: 0x7A, G: 0xE7, B: 0x00, A: 0xFF}, {R: 0x43, G: 0xF6, B: 0x11, A: 0xFF}, {R: 0x26, G: 0xEF, B: 0x7E, A: 0xFF},
	{R: 0x2C, G: 0xD5, B: 0xF6, A: 0xFF}, {R: 0x4E, G: 0x4E, B: 0x4E, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},

	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, {R: 0xB6, G: 0xE1, B: 0xFF, A: 0xFF}, {R: 0xCE, G: 0xD1, B: 0xFF, A: 0xFF}, {R: 0xE9, G: 0xC3, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0xBC, B: 0xFF, A: 0xFF}, {R: 0xFF, G: 0xBD, B: 0xF4, A: 0xFF}, {R: 0xFF, G: 0xC6, B: 0xC3, A: 0xFF}, {R: 0xFF, G: 0xD5, B: 0x9A, A: 0xFF},
	{R: 0xE9, G: 0xE6, B: 0x81, A: 0xFF}, {R: 0xCE, G: 0xF4, B: 0x81, A: 0xFF}, {R: 0xB6, G: 0xFB, B: 0x9A, A: 0xFF}, {R: 0xA9, G: 0xFA, B: 0xC3, A: 0xFF},
	{R: 0xA9, G: 0xF0, B: 0xF4, A: 0xFF}, {R: 0xB8, G: 0xB8, B: 0xB8, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, {R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
}

// Colorize maps a framebuffer entry (palette index 0-63) to RGB.
func Colorize(index uint8) color.RGBA {
	return SystemPalette[index&0x3F]
}
