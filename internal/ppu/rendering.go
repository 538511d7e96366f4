package ppu

// backgroundFetchStep runs one dot of the 8-cycle repeating background
// fetch: nametable byte, attribute byte, pattern low, pattern high,
// then load the shift registers and advance coarse X.
func (p *PPU) backgroundFetchStep() {
	switch p.dot % 8 {
	case 1:
		p.ntByte = p.ppuRead(0x2000 | (p.v & 0x0FFF))
	case 3:
		addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		shift := ((p.v >> 4) & 4) | (p.v & 2)
		p.atByte = (p.ppuRead(addr) >> shift) & 0x03
	case 5:
		table := uint16(0)
		if p.ctrl&0x10 != 0 {
			table = 0x1000
		}
		fineY := (p.v >> 12) & 0x07
		p.ptLo = p.ppuRead(table + uint16(p.ntByte)*16 + fineY)
	case 7:
		table := uint16(0)
		if p.ctrl&0x10 != 0 {
			table = 0x1000
		}
		fineY := (p.v >> 12) & 0x07
		p.ptHi = p.ppuRead(table + uint16(p.ntByte)*16 + fineY + 8)
	case 0:
		p.loadBackgroundShifters()
		p.incCoarseX()
	}
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShiftPatLo = (p.bgShiftPatLo & 0xFF00) | uint16(p.ptLo)
	p.bgShiftPatHi = (p.bgShiftPatHi & 0xFF00) | uint16(p.ptHi)

	attrLo, attrHi := uint16(0), uint16(0)
	if p.atByte&0x01 != 0 {
		attrLo = 0x00FF
	}
	if p.atByte&0x02 != 0 {
		attrHi = 0x00FF
	}
	p.bgShiftAttrLo = (p.bgShiftAttrLo & 0xFF00) | attrLo
	p.bgShiftAttrHi = (p.bgShiftAttrHi & 0xFF00) | attrHi
}

func (p *PPU) updateBackgroundShifters() {
	p.bgShiftPatLo <<= 1
	p.bgShiftPatHi <<= 1
	p.bgShiftAttrLo <<= 1
	p.bgShiftAttrHi <<= 1
}

// renderPixel samples the background and sprite pipelines for the
// current dot, resolves priority and sprite-0 hit, and writes one
// palette index to the framebuffer.
func (p *PPU) renderPixel() {
	screenX := p.dot - 1
	screenY := p.scanline
	if screenX < 0 || screenX >= ScreenWidth {
		return
	}

	bgPx, bgPal := p.backgroundPixel(screenX)
	spPx, spPal, spPriority, spIsZero := p.spritePixel(screenX)

	if bgPx != 0 && spPx != 0 && spIsZero && p.spriteZeroLine && screenX != 255 {
		p.status |= statusSprite0Hit
	}

	var group, px uint8
	switch {
	case spPx == 0:
		group, px = bgPal, bgPx
	case bgPx == 0:
		group, px = spPal+4, spPx
	case spPriority:
		group, px = spPal+4, spPx
	default:
		group, px = bgPal, bgPx
	}

	colorIndex := p.paletteRead(0x3F00+uint16(group)*4+uint16(px)) & 0x3F
	p.frameBuffer[screenY*ScreenWidth+screenX] = colorIndex
}

func (p *PPU) backgroundPixel(screenX int) (px, palette uint8) {
	if p.mask&0x08 == 0 {
		return 0, 0
	}
	if screenX < 8 && p.mask&0x02 == 0 {
		return 0, 0
	}

	shift := uint(15 - p.x)
	lo := uint8((p.bgShiftPatLo >> shift) & 1)
	hi := uint8((p.bgShiftPatHi >> shift) & 1)
	px = (hi << 1) | lo

	pal0 := uint8((p.bgShiftAttrLo >> shift) & 1)
	pal1 := uint8((p.bgShiftAttrHi >> shift) & 1)
	palette = (pal1 << 1) | pal0
	return px, palette
}
