package mapper

import "github.com/nescore/gonen/internal/rom"

func init() { register(0, newNROM) }

// nrom implements iNES mapper 0: fixed PRG, 16 KiB mirrored into both
// $8000 and $C000 when the cartridge has only one bank; CHR is either
// ROM (read-only) or RAM.
type nrom struct {
	noIRQ
	c        *rom.Cartridge
	oneBank  bool
	mirror   uint8
}

func newNROM(c *rom.Cartridge) Mapper {
	return &nrom{c: c, oneBank: c.NumPRGBanks() == 1, mirror: c.MirroringMode()}
}

func (m *nrom) PRGRead(addr uint16) uint8 {
	a := addr - 0x8000
	if m.oneBank {
		a %= 0x4000
	}
	return m.c.PRGRead(int(a))
}

func (m *nrom) PRGWrite(addr uint16, v uint8) {}

func (m *nrom) CHRRead(addr uint16) uint8     { return m.c.CHRRead(int(addr)) }
func (m *nrom) CHRWrite(addr uint16, v uint8) { m.c.CHRWrite(int(addr), v) }
func (m *nrom) MirroringMode() uint8          { return m.mirror }
