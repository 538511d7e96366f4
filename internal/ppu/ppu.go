// Package ppu implements the NES Picture Processing Unit (2C02): a
// dot-stepped rendering pipeline producing a 256x240 indexed
// framebuffer, the loopy v/t/x/w scroll registers, background and
// sprite fetch pipelines, palette/nametable memory with mirroring, and
// the CPU-visible register file at $2000-$2007.
//
// Memory map ($0000-$3FFF):
//   - $0000-$1FFF: pattern tables, through the cartridge mapper's CHR.
//   - $2000-$2FFF: four logical nametables, mapped to 2KiB of internal
//     VRAM per the cartridge's mirroring mode.
//   - $3000-$3EFF: mirror of $2000-$2EFF.
//   - $3F00-$3FFF: palette RAM, 32 bytes mirrored.
package ppu

import "github.com/nescore/gonen/internal/mapper"

// Screen dimensions.
const (
	ScreenWidth  = 256
	ScreenHeight = 240
)

// Timing (NTSC).
const (
	DotsPerScanline   = 341
	ScanlinesPerFrame = 262
)

// PPUSTATUS bits.
const (
	statusSpriteOverflow = 1 << 5
	statusSprite0Hit      = 1 << 6
	statusVBlank          = 1 << 7
)

// PPU implements the 2C02 core. It owns no host rendering concerns;
// FrameBuffer returns raw NES palette indices (0-63) per pixel, and
// Colorize (see palette.go) maps those to RGB for a host to display.
type PPU struct {
	mapper mapper.Mapper

	// 4 KiB: two internal 2 KiB banks for horizontal/vertical/single-screen
	// mirroring, sized to also hold four-screen mode's full logical space
	// (the extra VRAM a four-screen cartridge supplies) without reusing
	// the same 2 KiB bank for both halves.
	nametables [4096]uint8
	palette    [32]uint8
	oam        [256]uint8
	oamAddr    uint8

	ctrl, mask, status uint8
	busLatch           uint8 // PPU data-bus decay latch backing the open-bus bits

	v, t uint16 // loopy VRAM address / temp address (15 bits used)
	x    uint8  // fine X scroll (3 bits used)
	w    bool   // write toggle

	readBuffer uint8

	scanline int
	dot      int
	frame    uint64

	ntByte, atByte, ptLo, ptHi    uint8
	bgShiftPatLo, bgShiftPatHi    uint16
	bgShiftAttrLo, bgShiftAttrHi  uint16

	secOAM         [32]uint8
	spriteCount    int
	spriteX        [8]uint8
	spritePatLo    [8]uint8
	spritePatHi    [8]uint8
	spriteAttr     [8]uint8
	spriteIsZero   [8]bool
	spriteZeroLine bool

	frameBuffer [ScreenWidth * ScreenHeight]uint8

	nmiPending bool
}

// New returns a PPU wired to m for CHR/mirroring access.
func New(m mapper.Mapper) *PPU {
	return &PPU{mapper: m}
}

// Reset returns the PPU to its power-on state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t, p.x = 0, 0, 0
	p.w = false
	p.readBuffer = 0
	p.scanline, p.dot, p.frame = 0, 0, 0
	p.nmiPending = false
}

// Frame returns the frame counter; the orchestrator watches it to
// detect frame completion.
func (p *PPU) Frame() uint64 { return p.frame }

// NMI reports and clears the NMI output line.
func (p *PPU) NMI() bool {
	n := p.nmiPending
	p.nmiPending = false
	return n
}

// FrameBuffer exposes the indexed framebuffer (palette index 0-63 per
// pixel, row-major). The caller must not retain the slice across frames.
func (p *PPU) FrameBuffer() []uint8 { return p.frameBuffer[:] }

func renderingEnabled(mask uint8) bool { return mask&0x18 != 0 }

// Step advances the PPU by exactly one dot.
func (p *PPU) Step() {
	visible := p.scanline >= 0 && p.scanline <= 239
	preRender := p.scanline == 261
	enabled := renderingEnabled(p.mask)

	if visible && p.dot >= 1 && p.dot <= 256 {
		p.renderPixel()
	}

	if visible || preRender {
		if preRender && p.dot == 1 {
			p.status &^= statusVBlank | statusSprite0Hit | statusSpriteOverflow
		}

		bgFetchDot := (p.dot >= 1 && p.dot <= 256) || (p.dot >= 321 && p.dot <= 336)
		if bgFetchDot && enabled {
			p.updateBackgroundShifters()
			p.backgroundFetchStep()
		}

		if p.dot == 256 && enabled {
			p.incY()
		}
		if p.dot == 257 {
			if enabled {
				p.copyX()
			}
			if visible {
				p.evaluateSprites()
			}
		}
		if p.dot == 320 && (visible || preRender) {
			p.fetchSprites()
		}
		if preRender && p.dot >= 280 && p.dot <= 304 && enabled {
			p.copyY()
		}
		if p.dot == 338 || p.dot == 340 {
			p.ntByte = p.ppuRead(0x2000 | (p.v & 0x0FFF))
		}
		if p.dot == 260 && enabled {
			p.mapper.Scanline()
		}
	}

	if visible && p.dot >= 1 && p.dot <= 256 {
		p.advanceSpriteCounters()
	}

	if p.scanline == 241 && p.dot == 1 {
		p.status |= statusVBlank
		if p.ctrl&0x80 != 0 {
			p.nmiPending = true
		}
	}

	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		if p.scanline > 261 {
			p.scanline = 0
			p.frame++
		}
	}
}

// ReadRegister services a CPU read of $2000-$2007 (already mirror-masked
// by the bus).
func (p *PPU) ReadRegister(reg uint16) uint8 {
	var v uint8
	switch reg {
	case 0x2002:
		v = (p.status & 0xE0) | (p.busLatch & 0x1F)
		p.status &^= statusVBlank
		p.w = false
	case 0x2004:
		v = p.oam[p.oamAddr]
	case 0x2007:
		if p.v < 0x3F00 {
			v = p.readBuffer
			p.readBuffer = p.ppuRead(p.v)
		} else {
			v = p.paletteRead(p.v)
			p.readBuffer = p.ppuRead(p.v - 0x1000)
		}
		p.incrementVRAMAddr()
	default:
		v = p.busLatch
	}
	p.busLatch = v
	return v
}

// WriteRegister services a CPU write to $2000-$2007.
func (p *PPU) WriteRegister(reg uint16, v uint8) {
	p.busLatch = v
	switch reg {
	case 0x2000:
		p.ctrl = v
		p.t = (p.t & 0xF3FF) | (uint16(v&0x03) << 10)
	case 0x2001:
		p.mask = v
	case 0x2003:
		p.oamAddr = v
	case 0x2004:
		p.oam[p.oamAddr] = v
		p.oamAddr++
	case 0x2005:
		if !p.w {
			p.x = v & 0x07
			p.t = (p.t & 0xFFE0) | uint16(v>>3)
			p.w = true
		} else {
			p.t = (p.t & 0x0C1F) | (uint16(v&0x07) << 12) | (uint16(v>>3) << 5)
			p.w = false
		}
	case 0x2006:
		if !p.w {
			p.t = (p.t & 0x80FF) | (uint16(v&0x3F) << 8)
			p.w = true
		} else {
			p.t = (p.t & 0xFF00) | uint16(v)
			p.v = p.t
			p.w = false
		}
	case 0x2007:
		p.ppuWrite(p.v, v)
		p.incrementVRAMAddr()
	}
}

func (p *PPU) incrementVRAMAddr() {
	if p.ctrl&0x04 != 0 {
		p.v += 32
	} else {
		p.v++
	}
}

// WriteOAMDMA services a $4014 DMA byte, used by the bus during the
// 256-byte OAM copy.
func (p *PPU) WriteOAMDMA(v uint8) {
	p.oam[p.oamAddr] = v
	p.oamAddr++
}

func (p *PPU) ppuRead(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.mapper.CHRRead(addr)
	case addr < 0x3F00:
		return p.nametables[p.mirrorNametable(addr)]
	default:
		return p.paletteRead(addr)
	}
}

func (p *PPU) ppuWrite(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.mapper.CHRWrite(addr, v)
	case addr < 0x3F00:
		p.nametables[p.mirrorNametable(addr)] = v
	default:
		p.palette[mirrorPaletteAddr(addr)] = v
	}
}

func (p *PPU) paletteRead(addr uint16) uint8 {
	return p.palette[mirrorPaletteAddr(addr)]
}

func mirrorPaletteAddr(addr uint16) uint16 {
	a := (addr - 0x3F00) % 32
	if a >= 16 && a%4 == 0 {
		a -= 16
	}
	return a
}

func (p *PPU) mirrorNametable(addr uint16) uint16 {
	a := (addr - 0x2000) % 0x1000
	table := a / 0x0400
	offset := a % 0x0400
	switch p.mapper.MirroringMode() {
	case mapper.MirrorVertical:
		return a % 0x0800
	case mapper.MirrorHorizontal:
		return (table/2)*0x0400 + offset
	case mapper.MirrorSingleLow:
		return offset
	case mapper.MirrorSingleHigh:
		return 0x0400 + offset
	default: // four-screen
		return a
	}
}
