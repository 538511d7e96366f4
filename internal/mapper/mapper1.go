package mapper

import "github.com/nescore/gonen/internal/rom"

func init() { register(1, newMMC1) }

// mmc1 implements iNES mapper 1: a 5-bit serial shift register feeding
// four internal registers (control, CHR bank 0, CHR bank 1, PRG bank),
// selected by which address range ($8000-$9FFF/$A000-$BFFF/$C000-$DFFF/
// $E000-$FFFF) received the fifth write.
type mmc1 struct {
	noIRQ
	c *rom.Cartridge

	prgBanks uint8
	chrBanks uint8 // in 4 KiB units

	shift      uint8
	shiftCount uint8

	mirror  uint8 // raw 2-bit control field: 0/1 single-screen, 2 vertical, 3 horizontal
	prgMode uint8 // 0/1: 32K, 2: fix first, 3: fix last
	chrMode uint8 // 0: 8K, 1: 4K

	chrBank0, chrBank1 uint8
	prgBank            uint8
}

func newMMC1(c *rom.Cartridge) Mapper {
	chrBanks := uint8(c.CHRSize() / 4096)
	if chrBanks == 0 {
		chrBanks = 2 // 8 KiB of CHR-RAM, two 4K halves
	}
	return &mmc1{
		c:        c,
		prgBanks: c.NumPRGBanks(),
		chrBanks: chrBanks,
		shift:    0x10,
		prgMode:  3,
	}
}

func (m *mmc1) PRGRead(addr uint16) uint8 {
	var bank uint8
	switch {
	case addr < 0xC000:
		switch m.prgMode {
		case 0, 1:
			bank = m.prgBank &^ 1
		case 2:
			bank = 0
		case 3:
			bank = m.prgBank
		}
		return m.c.PRGRead(int(bank)*0x4000 + int(addr-0x8000))
	default:
		switch m.prgMode {
		case 0, 1:
			bank = m.prgBank | 1
		case 2:
			bank = m.prgBank
		case 3:
			bank = m.prgBanks - 1
		}
		return m.c.PRGRead(int(bank)*0x4000 + int(addr-0xC000))
	}
}

// PRGWrite drives the 5-bit serial shift register. A write with bit 7
// set resets the register unconditionally, regardless of how many bits
// had already been shifted in (spec §8 scenario 7).
func (m *mmc1) PRGWrite(addr uint16, v uint8) {
	if v&0x80 != 0 {
		m.shift = 0x10
		m.shiftCount = 0
		m.prgMode = 3
		return
	}

	m.shift = (m.shift >> 1) | ((v & 1) << 4)
	m.shiftCount++
	if m.shiftCount < 5 {
		return
	}

	val := m.shift
	m.shift, m.shiftCount = 0x10, 0

	switch {
	case addr < 0xA000:
		m.mirror = val & 0x03
		m.prgMode = (val >> 2) & 0x03
		m.chrMode = (val >> 4) & 0x01
	case addr < 0xC000:
		m.chrBank0 = val & 0x1F
	case addr < 0xE000:
		m.chrBank1 = val & 0x1F
	default:
		m.prgBank = val & 0x0F
		if m.prgBanks > 0 {
			m.prgBank %= m.prgBanks
		}
	}
}

func (m *mmc1) CHRRead(addr uint16) uint8 {
	bank, off := m.chrBankAddr(addr)
	return m.c.CHRRead(int(bank)*0x1000 + off)
}

func (m *mmc1) CHRWrite(addr uint16, v uint8) {
	if !m.c.IsCHRRAM() {
		return
	}
	bank, off := m.chrBankAddr(addr)
	m.c.CHRWrite(int(bank)*0x1000+off, v)
}

func (m *mmc1) chrBankAddr(addr uint16) (bank uint8, offset int) {
	if m.chrMode == 0 {
		bank = m.chrBank0 &^ 1
		if addr >= 0x1000 {
			bank |= 1
		}
		return bank, int(addr & 0x0FFF)
	}
	if addr < 0x1000 {
		return m.chrBank0, int(addr)
	}
	return m.chrBank1, int(addr - 0x1000)
}

func (m *mmc1) MirroringMode() uint8 {
	switch m.mirror {
	case 0:
		return MirrorSingleLow
	case 1:
		return MirrorSingleHigh
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}
