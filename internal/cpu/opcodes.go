package cpu

// Addressing modes. https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplied = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX // indexed indirect, (zp,X)
	modeIndirectY // indirect indexed, (zp),Y
	modeRelative
)

// Instruction tags: a closed set dispatched by a switch in execute.go,
// not by reflection on a mnemonic string.
const (
	iADC = iota
	iAND
	iASL
	iBCC
	iBCS
	iBEQ
	iBIT
	iBMI
	iBNE
	iBPL
	iBRK
	iBVC
	iBVS
	iCLC
	iCLD
	iCLI
	iCLV
	iCMP
	iCPX
	iCPY
	iDEC
	iDEX
	iDEY
	iEOR
	iINC
	iINX
	iINY
	iJMP
	iJSR
	iLDA
	iLDX
	iLDY
	iLSR
	iNOP
	iORA
	iPHA
	iPHP
	iPLA
	iPLP
	iROL
	iROR
	iRTI
	iRTS
	iSBC
	iSEC
	iSED
	iSEI
	iSTA
	iSTX
	iSTY
	iTAX
	iTAY
	iTSX
	iTXA
	iTXS
	iTYA
)

// isRead marks addressing modes that incur the page-crossing cycle
// penalty when the instruction only reads its operand (spec §4.3: the
// penalty never applies to writes or read-modify-writes).
type opcode struct {
	inst   uint8
	mode   uint8
	bytes  uint8
	cycles uint8
	isRead bool // whether a page-cross should cost an extra cycle
}

var opcodeTable = map[uint8]opcode{
	0x69: {iADC, modeImmediate, 2, 2, false},
	0x65: {iADC, modeZeroPage, 2, 3, false},
	0x75: {iADC, modeZeroPageX, 2, 4, false},
	0x6D: {iADC, modeAbsolute, 3, 4, false},
	0x7D: {iADC, modeAbsoluteX, 3, 4, true},
	0x79: {iADC, modeAbsoluteY, 3, 4, true},
	0x61: {iADC, modeIndirectX, 2, 6, false},
	0x71: {iADC, modeIndirectY, 2, 5, true},

	0x29: {iAND, modeImmediate, 2, 2, false},
	0x25: {iAND, modeZeroPage, 2, 3, false},
	0x35: {iAND, modeZeroPageX, 2, 4, false},
	0x2D: {iAND, modeAbsolute, 3, 4, false},
	0x3D: {iAND, modeAbsoluteX, 3, 4, true},
	0x39: {iAND, modeAbsoluteY, 3, 4, true},
	0x21: {iAND, modeIndirectX, 2, 6, false},
	0x31: {iAND, modeIndirectY, 2, 5, true},

	0x0A: {iASL, modeAccumulator, 1, 2, false},
	0x06: {iASL, modeZeroPage, 2, 5, false},
	0x16: {iASL, modeZeroPageX, 2, 6, false},
	0x0E: {iASL, modeAbsolute, 3, 6, false},
	0x1E: {iASL, modeAbsoluteX, 3, 7, false},

	0x90: {iBCC, modeRelative, 2, 2, false},
	0xB0: {iBCS, modeRelative, 2, 2, false},
	0xF0: {iBEQ, modeRelative, 2, 2, false},
	0x30: {iBMI, modeRelative, 2, 2, false},
	0xD0: {iBNE, modeRelative, 2, 2, false},
	0x10: {iBPL, modeRelative, 2, 2, false},
	0x50: {iBVC, modeRelative, 2, 2, false},
	0x70: {iBVS, modeRelative, 2, 2, false},

	0x24: {iBIT, modeZeroPage, 2, 3, false},
	0x2C: {iBIT, modeAbsolute, 3, 4, false},

	0x00: {iBRK, modeImplied, 2, 7, false},

	0x18: {iCLC, modeImplied, 1, 2, false},
	0xD8: {iCLD, modeImplied, 1, 2, false},
	0x58: {iCLI, modeImplied, 1, 2, false},
	0xB8: {iCLV, modeImplied, 1, 2, false},

	0xC9: {iCMP, modeImmediate, 2, 2, false},
	0xC5: {iCMP, modeZeroPage, 2, 3, false},
	0xD5: {iCMP, modeZeroPageX, 2, 4, false},
	0xCD: {iCMP, modeAbsolute, 3, 4, false},
	0xDD: {iCMP, modeAbsoluteX, 3, 4, true},
	0xD9: {iCMP, modeAbsoluteY, 3, 4, true},
	0xC1: {iCMP, modeIndirectX, 2, 6, false},
	0xD1: {iCMP, modeIndirectY, 2, 5, true},

	0xE0: {iCPX, modeImmediate, 2, 2, false},
	0xE4: {iCPX, modeZeroPage, 2, 3, false},
	0xEC: {iCPX, modeAbsolute, 3, 4, false},

	0xC0: {iCPY, modeImmediate, 2, 2, false},
	0xC4: {iCPY, modeZeroPage, 2, 3, false},
	0xCC: {iCPY, modeAbsolute, 3, 4, false},

	0xC6: {iDEC, modeZeroPage, 2, 5, false},
	0xD6: {iDEC, modeZeroPageX, 2, 6, false},
	0xCE: {iDEC, modeAbsolute, 3, 6, false},
	0xDE: {iDEC, modeAbsoluteX, 3, 7, false},

	0xCA: {iDEX, modeImplied, 1, 2, false},
	0x88: {iDEY, modeImplied, 1, 2, false},

	0x49: {iEOR, modeImmediate, 2, 2, false},
	0x45: {iEOR, modeZeroPage, 2, 3, false},
	0x55: {iEOR, modeZeroPageX, 2, 4, false},
	0x4D: {iEOR, modeAbsolute, 3, 4, false},
	0x5D: {iEOR, modeAbsoluteX, 3, 4, true},
	0x59: {iEOR, modeAbsoluteY, 3, 4, true},
	0x41: {iEOR, modeIndirectX, 2, 6, false},
	0x51: {iEOR, modeIndirectY, 2, 5, true},

	0xE6: {iINC, modeZeroPage, 2, 5, false},
	0xF6: {iINC, modeZeroPageX, 2, 6, false},
	0xEE: {iINC, modeAbsolute, 3, 6, false},
	0xFE: {iINC, modeAbsoluteX, 3, 7, false},

	0xE8: {iINX, modeImplied, 1, 2, false},
	0xC8: {iINY, modeImplied, 1, 2, false},

	0x4C: {iJMP, modeAbsolute, 3, 3, false},
	0x6C: {iJMP, modeIndirect, 3, 5, false},
	0x20: {iJSR, modeAbsolute, 3, 6, false},

	0xA9: {iLDA, modeImmediate, 2, 2, false},
	0xA5: {iLDA, modeZeroPage, 2, 3, false},
	0xB5: {iLDA, modeZeroPageX, 2, 4, false},
	0xAD: {iLDA, modeAbsolute, 3, 4, false},
	0xBD: {iLDA, modeAbsoluteX, 3, 4, true},
	0xB9: {iLDA, modeAbsoluteY, 3, 4, true},
	0xA1: {iLDA, modeIndirectX, 2, 6, false},
	0xB1: {iLDA, modeIndirectY, 2, 5, true},

	0xA2: {iLDX, modeImmediate, 2, 2, false},
	0xA6: {iLDX, modeZeroPage, 2, 3, false},
	0xB6: {iLDX, modeZeroPageY, 2, 4, false},
	0xAE: {iLDX, modeAbsolute, 3, 4, false},
	0xBE: {iLDX, modeAbsoluteY, 3, 4, true},

	0xA0: {iLDY, modeImmediate, 2, 2, false},
	0xA4: {iLDY, modeZeroPage, 2, 3, false},
	0xB4: {iLDY, modeZeroPageX, 2, 4, false},
	0xAC: {iLDY, modeAbsolute, 3, 4, false},
	0xBC: {iLDY, modeAbsoluteX, 3, 4, true},

	0x4A: {iLSR, modeAccumulator, 1, 2, false},
	0x46: {iLSR, modeZeroPage, 2, 5, false},
	0x56: {iLSR, modeZeroPageX, 2, 6, false},
	0x4E: {iLSR, modeAbsolute, 3, 6, false},
	0x5E: {iLSR, modeAbsoluteX, 3, 7, false},

	0xEA: {iNOP, modeImplied, 1, 2, false},

	0x09: {iORA, modeImmediate, 2, 2, false},
	0x05: {iORA, modeZeroPage, 2, 3, false},
	0x15: {iORA, modeZeroPageX, 2, 4, false},
	0x0D: {iORA, modeAbsolute, 3, 4, false},
	0x1D: {iORA, modeAbsoluteX, 3, 4, true},
	0x19: {iORA, modeAbsoluteY, 3, 4, true},
	0x01: {iORA, modeIndirectX, 2, 6, false},
	0x11: {iORA, modeIndirectY, 2, 5, true},

	0x48: {iPHA, modeImplied, 1, 3, false},
	0x08: {iPHP, modeImplied, 1, 3, false},
	0x68: {iPLA, modeImplied, 1, 4, false},
	0x28: {iPLP, modeImplied, 1, 4, false},

	0x2A: {iROL, modeAccumulator, 1, 2, false},
	0x26: {iROL, modeZeroPage, 2, 5, false},
	0x36: {iROL, modeZeroPageX, 2, 6, false},
	0x2E: {iROL, modeAbsolute, 3, 6, false},
	0x3E: {iROL, modeAbsoluteX, 3, 7, false},

	0x6A: {iROR, modeAccumulator, 1, 2, false},
	0x66: {iROR, modeZeroPage, 2, 5, false},
	0x76: {iROR, modeZeroPageX, 2, 6, false},
	0x6E: {iROR, modeAbsolute, 3, 6, false},
	0x7E: {iROR, modeAbsoluteX, 3, 7, false},

	0x40: {iRTI, modeImplied, 1, 6, false},
	0x60: {iRTS, modeImplied, 1, 6, false},

	0xE9: {iSBC, modeImmediate, 2, 2, false},
	0xE5: {iSBC, modeZeroPage, 2, 3, false},
	0xF5: {iSBC, modeZeroPageX, 2, 4, false},
	0xED: {iSBC, modeAbsolute, 3, 4, false},
	0xFD: {iSBC, modeAbsoluteX, 3, 4, true},
	0xF9: {iSBC, modeAbsoluteY, 3, 4, true},
	0xE1: {iSBC, modeIndirectX, 2, 6, false},
	0xF1: {iSBC, modeIndirectY, 2, 5, true},

	0x38: {iSEC, modeImplied, 1, 2, false},
	0xF8: {iSED, modeImplied, 1, 2, false},
	0x78: {iSEI, modeImplied, 1, 2, false},

	0x85: {iSTA, modeZeroPage, 2, 3, false},
	0x95: {iSTA, modeZeroPageX, 2, 4, false},
	0x8D: {iSTA, modeAbsolute, 3, 4, false},
	0x9D: {iSTA, modeAbsoluteX, 3, 5, false},
	0x99: {iSTA, modeAbsoluteY, 3, 5, false},
	0x81: {iSTA, modeIndirectX, 2, 6, false},
	0x91: {iSTA, modeIndirectY, 2, 6, false},

	0x86: {iSTX, modeZeroPage, 2, 3, false},
	0x96: {iSTX, modeZeroPageY, 2, 4, false},
	0x8E: {iSTX, modeAbsolute, 3, 4, false},

	0x84: {iSTY, modeZeroPage, 2, 3, false},
	0x94: {iSTY, modeZeroPageX, 2, 4, false},
	0x8C: {iSTY, modeAbsolute, 3, 4, false},

	0xAA: {iTAX, modeImplied, 1, 2, false},
	0xA8: {iTAY, modeImplied, 1, 2, false},
	0xBA: {iTSX, modeImplied, 1, 2, false},
	0x8A: {iTXA, modeImplied, 1, 2, false},
	0x9A: {iTXS, modeImplied, 1, 2, false},
	0x98: {iTYA, modeImplied, 1, 2, false},
}
