package rom

import (
	"bytes"
	"testing"
)

func buildImage(flags6, flags7, prgBanks, chrBanks uint8, trainer bool) []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.WriteByte(prgBanks)
	buf.WriteByte(chrBanks)
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // flags8-10 + unused tail

	if trainer {
		buf.Write(make([]byte, TrainerSize))
	}
	buf.Write(make([]byte, PRGBlockSize*int(prgBanks)))
	if chrBanks > 0 {
		buf.Write(make([]byte, CHRBlockSize*int(chrBanks)))
	}
	return buf.Bytes()
}

func TestReadNROM(t *testing.T) {
	img := buildImage(0x00, 0x00, 2, 1, false)
	c, err := Read(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.MapperNum() != 0 {
		t.Errorf("MapperNum() = %d, want 0", c.MapperNum())
	}
	if c.MirroringMode() != MirrorHorizontal {
		t.Errorf("MirroringMode() = %d, want horizontal", c.MirroringMode())
	}
	if c.PRGSize() != PRGBlockSize*2 {
		t.Errorf("PRGSize() = %d, want %d", c.PRGSize(), PRGBlockSize*2)
	}
	if c.IsCHRRAM() {
		t.Error("IsCHRRAM() = true, want false (image supplies CHR-ROM)")
	}
}

func TestCHRRAMWhenCHRSizeZero(t *testing.T) {
	img := buildImage(0x00, 0x00, 1, 0, false)
	c, err := Read(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !c.IsCHRRAM() {
		t.Error("IsCHRRAM() = false, want true when header chrSize is 0")
	}
	if c.CHRSize() != CHRBlockSize {
		t.Errorf("CHRSize() = %d, want one writable bank", c.CHRSize())
	}
}

func TestMapperNumberCombinesBothNibbles(t *testing.T) {
	// Mapper 0x14: low nibble 4 from flags6 bits 7-4, high nibble 1 from
	// flags7 bits 7-4 (reserved tail all zero, so it is not discarded).
	img := buildImage(0x40, 0x10, 1, 1, false)
	c, err := Read(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.MapperNum() != 0x14 {
		t.Errorf("MapperNum() = %d, want %d", c.MapperNum(), 0x14)
	}
}

func TestIgnoreHighNibbleHeuristic(t *testing.T) {
	// A nonzero byte in the reserved tail (bytes 11-15) signals an old
	// ripper's text, not a genuine NES 2.0 high mapper nibble.
	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.WriteByte(1)
	buf.WriteByte(1)
	buf.WriteByte(0x40) // flags6: mapper low nibble = 4
	buf.WriteByte(0x10) // flags7: mapper high nibble = 1, not NES2.0
	buf.Write([]byte{0, 0, 0})        // flags8-10
	buf.Write([]byte{'D', 'i', 's', 'k', 0}) // unused tail, not all-zero
	buf.Write(make([]byte, PRGBlockSize))
	buf.Write(make([]byte, CHRBlockSize))

	c, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.MapperNum() != 4 {
		t.Errorf("MapperNum() = %d, want 4 (high nibble discarded)", c.MapperNum())
	}
}

func TestTrainerIsSkipped(t *testing.T) {
	img := buildImage(0x04, 0x00, 1, 1, true)
	c, err := Read(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if c.PRGSize() != PRGBlockSize {
		t.Errorf("PRGSize() = %d, want %d (trainer bytes must not leak into PRG)", c.PRGSize(), PRGBlockSize)
	}
}

func TestBadMagicRejected(t *testing.T) {
	img := buildImage(0, 0, 1, 1, false)
	img[0] = 'X'
	if _, err := Read(bytes.NewReader(img)); err == nil {
		t.Error("Read() with bad magic = nil error, want error")
	}
}

func TestSRAMRoundTrip(t *testing.T) {
	img := buildImage(0x02, 0x00, 1, 1, false) // flags6 battery bit set
	c, err := Read(bytes.NewReader(img))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !c.HasSaveRAM() {
		t.Error("HasSaveRAM() = false, want true")
	}

	c.SRAMWrite(0x6010, 0xAB)
	if got := c.SRAMRead(0x6010); got != 0xAB {
		t.Errorf("SRAMRead(0x6010) = %#02x, want 0xAB", got)
	}

	saved := append([]byte(nil), c.SRAM()...)
	c2, _ := Read(bytes.NewReader(img))
	if err := c2.LoadSRAM(saved); err != nil {
		t.Fatalf("LoadSRAM: %v", err)
	}
	if got := c2.SRAMRead(0x6010); got != 0xAB {
		t.Errorf("SRAMRead(0x6010) after LoadSRAM = %#02x, want 0xAB", got)
	}
}
