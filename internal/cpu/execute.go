package cpu

// execute dispatches op.inst through a switch over the closed
// instruction-tag set (never reflection over a mnemonic name). It
// returns any cycle cost beyond the opcode's base cost (the page-cross
// penalty for read instructions in abs-X/abs-Y/(zp),Y, and the
// taken/page-cross penalties for branches) and whether this
// instruction itself set PC to its final value — JMP, JSR, RTS, RTI,
// BRK always report true; a branch reports true only when taken. Step
// uses that signal instead of inferring it from PC's value, since a
// taken branch or jump can legitimately land on startPC+1.
func (c *CPU) execute(op opcode) (extra int, jumped bool) {
	switch op.inst {
	case iADC:
		v, crossed := c.readOperand(op)
		c.adc(v)
		return penalty(op, crossed), false
	case iAND:
		v, crossed := c.readOperand(op)
		c.A &= v
		c.setZN(c.A)
		return penalty(op, crossed), false
	case iASL:
		return c.shiftLeft(op, false), false
	case iBCC:
		return c.branch(op, c.P&FlagCarry == 0)
	case iBCS:
		return c.branch(op, c.P&FlagCarry != 0)
	case iBEQ:
		return c.branch(op, c.P&FlagZero != 0)
	case iBIT:
		v, _ := c.readOperand(op)
		c.setFlag(FlagZero, c.A&v == 0)
		c.setFlag(FlagOverflow, v&FlagOverflow != 0)
		c.setFlag(FlagNegative, v&FlagNegative != 0)
		return 0, false
	case iBMI:
		return c.branch(op, c.P&FlagNegative != 0)
	case iBNE:
		return c.branch(op, c.P&FlagZero == 0)
	case iBPL:
		return c.branch(op, c.P&FlagNegative == 0)
	case iBRK:
		c.doBRK()
		return 0, true
	case iBVC:
		return c.branch(op, c.P&FlagOverflow == 0)
	case iBVS:
		return c.branch(op, c.P&FlagOverflow != 0)
	case iCLC:
		c.setFlag(FlagCarry, false)
	case iCLD:
		c.setFlag(FlagDecimal, false)
	case iCLI:
		c.setFlag(FlagInterrupt, false)
	case iCLV:
		c.setFlag(FlagOverflow, false)
	case iCMP:
		v, crossed := c.readOperand(op)
		c.compare(c.A, v)
		return penalty(op, crossed), false
	case iCPX:
		v, _ := c.readOperand(op)
		c.compare(c.X, v)
	case iCPY:
		v, _ := c.readOperand(op)
		c.compare(c.Y, v)
	case iDEC:
		addr, _ := c.operand(op.mode)
		v := c.read(addr) - 1
		c.write(addr, v)
		c.setZN(v)
	case iDEX:
		c.X--
		c.setZN(c.X)
	case iDEY:
		c.Y--
		c.setZN(c.Y)
	case iEOR:
		v, crossed := c.readOperand(op)
		c.A ^= v
		c.setZN(c.A)
		return penalty(op, crossed), false
	case iINC:
		addr, _ := c.operand(op.mode)
		v := c.read(addr) + 1
		c.write(addr, v)
		c.setZN(v)
	case iINX:
		c.X++
		c.setZN(c.X)
	case iINY:
		c.Y++
		c.setZN(c.Y)
	case iJMP:
		addr, _ := c.operand(op.mode)
		c.PC = addr
		return 0, true
	case iJSR:
		addr, _ := c.operand(op.mode)
		c.pushAddr(c.PC + 1)
		c.PC = addr
		return 0, true
	case iLDA:
		v, crossed := c.readOperand(op)
		c.A = v
		c.setZN(c.A)
		return penalty(op, crossed), false
	case iLDX:
		v, crossed := c.readOperand(op)
		c.X = v
		c.setZN(c.X)
		return penalty(op, crossed), false
	case iLDY:
		v, crossed := c.readOperand(op)
		c.Y = v
		c.setZN(c.Y)
		return penalty(op, crossed), false
	case iLSR:
		return c.shiftRight(op, false), false
	case iNOP:
		// nothing
	case iORA:
		v, crossed := c.readOperand(op)
		c.A |= v
		c.setZN(c.A)
		return penalty(op, crossed), false
	case iPHA:
		c.pushByte(c.A)
	case iPHP:
		c.pushByte(c.P | FlagUnused | FlagBreak)
	case iPLA:
		c.A = c.popByte()
		c.setZN(c.A)
	case iPLP:
		c.P = (c.popByte() &^ FlagBreak) | FlagUnused
	case iROL:
		return c.shiftLeft(op, true), false
	case iROR:
		return c.shiftRight(op, true), false
	case iRTI:
		c.P = (c.popByte() &^ FlagBreak) | FlagUnused
		c.PC = c.popAddr()
		return 0, true
	case iRTS:
		c.PC = c.popAddr() + 1
		return 0, true
	case iSBC:
		v, crossed := c.readOperand(op)
		c.adc(^v)
		return penalty(op, crossed), false
	case iSEC:
		c.setFlag(FlagCarry, true)
	case iSED:
		c.setFlag(FlagDecimal, true)
	case iSEI:
		c.setFlag(FlagInterrupt, true)
	case iSTA:
		addr, _ := c.operand(op.mode)
		c.write(addr, c.A)
	case iSTX:
		addr, _ := c.operand(op.mode)
		c.write(addr, c.X)
	case iSTY:
		addr, _ := c.operand(op.mode)
		c.write(addr, c.Y)
	case iTAX:
		c.X = c.A
		c.setZN(c.X)
	case iTAY:
		c.Y = c.A
		c.setZN(c.Y)
	case iTSX:
		c.X = c.SP
		c.setZN(c.X)
	case iTXA:
		c.A = c.X
		c.setZN(c.A)
	case iTXS:
		c.SP = c.X
	case iTYA:
		c.A = c.Y
		c.setZN(c.A)
	}
	return 0, false
}

// readOperand resolves op's addressing mode and reads the byte there,
// except for Accumulator/Implied which never reach here.
func (c *CPU) readOperand(op opcode) (v uint8, pageCrossed bool) {
	addr, crossed := c.operand(op.mode)
	return c.read(addr), crossed
}

// penalty returns +1 only for read instructions that crossed a page
// (spec §4.3/§8: writes and read-modify-writes never take this cost).
func penalty(op opcode, crossed bool) int {
	if op.isRead && crossed {
		return 1
	}
	return 0
}

// adc implements both ADC and SBC (SBC is ADC with the operand
// bitwise-inverted, the classical one's-complement trick) including
// carry and signed-overflow per spec §4.3.
func (c *CPU) adc(v uint8) {
	carry := uint16(0)
	if c.P&FlagCarry != 0 {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + carry
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^result)&(v^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) compare(reg, v uint8) {
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(reg - v)
}

func (c *CPU) shiftLeft(op opcode, rotate bool) int {
	oldCarryIn := uint8(0)
	if rotate && c.P&FlagCarry != 0 {
		oldCarryIn = 1
	}

	if op.mode == modeAccumulator {
		carryOut := c.A & 0x80
		c.A = (c.A << 1) | oldCarryIn
		c.setFlag(FlagCarry, carryOut != 0)
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operand(op.mode)
	v := c.read(addr)
	carryOut := v & 0x80
	v = (v << 1) | oldCarryIn
	c.write(addr, v)
	c.setFlag(FlagCarry, carryOut != 0)
	c.setZN(v)
	return 0
}

func (c *CPU) shiftRight(op opcode, rotate bool) int {
	oldCarryIn := uint8(0)
	if rotate && c.P&FlagCarry != 0 {
		oldCarryIn = 0x80
	}

	if op.mode == modeAccumulator {
		carryOut := c.A & 0x01
		c.A = (c.A >> 1) | oldCarryIn
		c.setFlag(FlagCarry, carryOut != 0)
		c.setZN(c.A)
		return 0
	}

	addr, _ := c.operand(op.mode)
	v := c.read(addr)
	carryOut := v & 0x01
	v = (v >> 1) | oldCarryIn
	c.write(addr, v)
	c.setFlag(FlagCarry, carryOut != 0)
	c.setZN(v)
	return 0
}

// branch adjusts PC when taken is true, charging +1 for a taken branch
// and a further +1 if it crosses a page (spec §4.3, §8). It reports
// jumped=true only when taken: a not-taken branch leaves PC for Step's
// normal operand-length advance.
func (c *CPU) branch(op opcode, taken bool) (cost int, jumped bool) {
	target, _ := c.operand(modeRelative)
	if !taken {
		return 0, false
	}
	cost = 1
	if pageDiffers(c.PC+1, target) {
		cost++
	}
	c.PC = target
	return cost, true
}

// doBRK pushes PC+1 (skipping BRK's padding byte) and status with B
// set, then vectors through $FFFE, exactly like a hardware IRQ except
// for the B bit in the pushed copy (spec §4.3).
func (c *CPU) doBRK() {
	c.pushAddr(c.PC + 1)
	c.pushByte(c.P | FlagUnused | FlagBreak)
	c.setFlag(FlagInterrupt, true)
	c.PC = c.read16(vecBRK)
}
