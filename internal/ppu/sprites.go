package ppu

// evaluateSprites scans primary OAM (sprite order 0..63) for sprites
// visible on the next scanline and copies up to 8 into secondary OAM,
// setting sprite overflow if a ninth would be needed.
func (p *PPU) evaluateSprites() {
	for i := range p.secOAM {
		p.secOAM[i] = 0xFF
	}
	p.spriteCount = 0
	p.spriteZeroLine = false

	if !renderingEnabled(p.mask) {
		return
	}

	height := uint16(8)
	if p.ctrl&0x20 != 0 {
		height = 16
	}

	for i := 0; i < 64; i++ {
		y := p.oam[i*4]
		row := uint16(p.scanline) - uint16(y)
		if row >= height {
			continue
		}
		if p.spriteCount >= 8 {
			p.status |= statusSpriteOverflow
			break
		}
		copy(p.secOAM[p.spriteCount*4:p.spriteCount*4+4], p.oam[i*4:i*4+4])
		if i == 0 {
			p.spriteZeroLine = true
			p.spriteIsZero[p.spriteCount] = true
		} else {
			p.spriteIsZero[p.spriteCount] = false
		}
		p.spriteCount++
	}
}

// fetchSprites loads pattern bytes for every sprite slot found by
// evaluateSprites.
func (p *PPU) fetchSprites() {
	height := uint16(8)
	if p.ctrl&0x20 != 0 {
		height = 16
	}

	for i := 0; i < p.spriteCount; i++ {
		y := p.secOAM[i*4]
		tile := p.secOAM[i*4+1]
		attr := p.secOAM[i*4+2]
		x := p.secOAM[i*4+3]

		row := uint16(p.scanline) - uint16(y)
		if attr&0x80 != 0 { // vertical flip
			row = height - 1 - row
		}

		var addr uint16
		if height == 16 {
			table := uint16(tile&0x01) << 12
			index := uint16(tile & 0xFE)
			if row >= 8 {
				index++
				row -= 8
			}
			addr = table | (index << 4) | (row & 0x07)
		} else {
			table := uint16(0)
			if p.ctrl&0x08 != 0 {
				table = 0x1000
			}
			addr = table | (uint16(tile) << 4) | (row & 0x07)
		}

		lo := p.ppuRead(addr)
		hi := p.ppuRead(addr + 8)
		if attr&0x40 != 0 { // horizontal flip
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		p.spritePatLo[i] = lo
		p.spritePatHi[i] = hi
		p.spriteAttr[i] = attr
		p.spriteX[i] = x
	}
	for i := p.spriteCount; i < 8; i++ {
		p.spritePatLo[i], p.spritePatHi[i] = 0, 0
	}
}

func reverseBits(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// advanceSpriteCounters runs one dot of the per-slot X counter/shift:
// a slot with a nonzero counter decrements it; a slot at zero shifts
// its pattern registers left by one (spec's literal per-dot model).
func (p *PPU) advanceSpriteCounters() {
	for i := 0; i < p.spriteCount; i++ {
		if p.spriteX[i] > 0 {
			p.spriteX[i]--
		} else {
			p.spritePatLo[i] <<= 1
			p.spritePatHi[i] <<= 1
		}
	}
}

// spritePixel returns the first non-transparent sprite pixel across
// active slots, in slot order, sampled before this dot's counter
// advance (advanceSpriteCounters runs after renderPixel each Step).
func (p *PPU) spritePixel(screenX int) (px, palette uint8, priority, isZero bool) {
	if p.mask&0x10 == 0 {
		return 0, 0, false, false
	}
	if screenX < 8 && p.mask&0x04 == 0 {
		return 0, 0, false, false
	}

	for i := 0; i < p.spriteCount; i++ {
		if p.spriteX[i] != 0 {
			continue
		}
		lo := (p.spritePatLo[i] >> 7) & 1
		hi := (p.spritePatHi[i] >> 7) & 1
		v := (hi << 1) | lo
		if v == 0 {
			continue
		}
		return v, p.spriteAttr[i] & 0x03, p.spriteAttr[i]&0x20 == 0, p.spriteIsZero[i]
	}
	return 0, 0, false, false
}
