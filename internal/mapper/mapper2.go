package mapper

import "github.com/nescore/gonen/internal/rom"

func init() { register(2, newUxROM) }

// uxrom implements iNES mapper 2 (UxROM): a switchable 16 KiB bank at
// $8000-$BFFF selected by the low bits of any PRG-area write, and the
// last 16 KiB bank fixed at $C000-$FFFF. CHR is always RAM.
type uxrom struct {
	noIRQ
	c       *rom.Cartridge
	banks   uint8
	bank    uint8
	mirror  uint8
}

func newUxROM(c *rom.Cartridge) Mapper {
	return &uxrom{c: c, banks: c.NumPRGBanks(), mirror: c.MirroringMode()}
}

func (m *uxrom) PRGRead(addr uint16) uint8 {
	switch {
	case addr < 0xC000:
		return m.c.PRGRead(int(m.bank)*0x4000 + int(addr-0x8000))
	default:
		return m.c.PRGRead(int(m.banks-1)*0x4000 + int(addr-0xC000))
	}
}

func (m *uxrom) PRGWrite(addr uint16, v uint8) {
	m.bank = v & 0x0F
	if m.banks > 0 {
		m.bank %= m.banks
	}
}

func (m *uxrom) CHRRead(addr uint16) uint8     { return m.c.CHRRead(int(addr)) }
func (m *uxrom) CHRWrite(addr uint16, v uint8) { m.c.CHRWrite(int(addr), v) }
func (m *uxrom) MirroringMode() uint8          { return m.mirror }
