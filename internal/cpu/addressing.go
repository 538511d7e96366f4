package cpu

// operand resolves the addressing mode into an effective address (or,
// for Immediate, the address of the operand byte itself) and whether
// resolving it crossed a page boundary. c.PC must already point past
// the opcode byte.
func (c *CPU) operand(mode uint8) (addr uint16, pageCrossed bool) {
	switch mode {
	case modeImmediate:
		return c.PC, false
	case modeZeroPage:
		return uint16(c.read(c.PC)), false
	case modeZeroPageX:
		return uint16(c.read(c.PC) + c.X), false
	case modeZeroPageY:
		return uint16(c.read(c.PC) + c.Y), false
	case modeAbsolute:
		return c.read16(c.PC), false
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr = base + uint16(c.X)
		return addr, pageDiffers(base, addr)
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)
	case modeIndirect:
		ptr := c.read16(c.PC)
		return c.indirectRead16(ptr), false
	case modeIndirectX:
		zp := c.read(c.PC) + c.X
		return c.zpRead16(zp), false
	case modeIndirectY:
		zp := c.read(c.PC)
		base := c.zpRead16(zp)
		addr = base + uint16(c.Y)
		return addr, pageDiffers(base, addr)
	case modeRelative:
		offset := int8(c.read(c.PC))
		return uint16(int32(c.PC) + 1 + int32(offset)), false
	default:
		panic("cpu: addressing mode has no operand address")
	}
}

// indirectRead16 reproduces the documented 6502 JMP ($xxFF) bug: the
// high byte is fetched from the start of the same page as the low
// byte, not from the next page (spec §4.3, §8 scenario 2).
func (c *CPU) indirectRead16(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
	hi := uint16(c.read(hiAddr))
	return hi<<8 | lo
}

// zpRead16 reads a 16-bit pointer out of the zero page, wrapping
// within page zero (used by indexed-indirect/indirect-indexed modes).
func (c *CPU) zpRead16(zp uint8) uint16 {
	lo := uint16(c.read(uint16(zp)))
	hi := uint16(c.read(uint16(zp + 1)))
	return hi<<8 | lo
}

func pageDiffers(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}
