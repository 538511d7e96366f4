package mapper

import "github.com/nescore/gonen/internal/rom"

func init() { register(3, newCNROM) }

// cnrom implements iNES mapper 3 (CNROM): PRG is fixed (same mirroring
// rule as NROM), CHR is one of up to four 8 KiB banks selected by any
// PRG-area write.
type cnrom struct {
	noIRQ
	c       *rom.Cartridge
	oneBank bool
	chrBank uint8
	chrBanks uint8
	mirror  uint8
}

func newCNROM(c *rom.Cartridge) Mapper {
	banks := uint8(c.CHRSize() / 8192)
	if banks == 0 {
		banks = 1
	}
	return &cnrom{c: c, oneBank: c.NumPRGBanks() == 1, chrBanks: banks, mirror: c.MirroringMode()}
}

func (m *cnrom) PRGRead(addr uint16) uint8 {
	a := addr - 0x8000
	if m.oneBank {
		a %= 0x4000
	}
	return m.c.PRGRead(int(a))
}

func (m *cnrom) PRGWrite(addr uint16, v uint8) {
	m.chrBank = v % m.chrBanks
}

func (m *cnrom) CHRRead(addr uint16) uint8 {
	return m.c.CHRRead(int(m.chrBank)*0x2000 + int(addr))
}

func (m *cnrom) CHRWrite(addr uint16, v uint8) {
	if m.c.IsCHRRAM() {
		m.c.CHRWrite(int(m.chrBank)*0x2000+int(addr), v)
	}
}

func (m *cnrom) MirroringMode() uint8 { return m.mirror }
