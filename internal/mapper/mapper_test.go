package mapper

import (
	"bytes"
	"testing"

	"github.com/nescore/gonen/internal/rom"
)

// buildCartridge assembles a minimal in-memory iNES image with prgBanks
// 16 KiB banks and chrBanks 8 KiB banks, each bank byte-filled with its
// own index so tests can tell which bank got selected.
func buildCartridge(t *testing.T, mapperNum uint8, prgBanks, chrBanks int) *rom.Cartridge {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.WriteByte(byte(prgBanks))
	buf.WriteByte(byte(chrBanks))
	buf.WriteByte((mapperNum & 0x0F) << 4) // flags6: mirroring=0, mapper low nibble
	buf.WriteByte(mapperNum & 0xF0)        // flags7: mapper high nibble
	buf.Write(make([]byte, 8))             // flags8-15

	for b := 0; b < prgBanks; b++ {
		buf.Write(bytes.Repeat([]byte{byte(b)}, rom.PRGBlockSize))
	}
	for b := 0; b < chrBanks; b++ {
		buf.Write(bytes.Repeat([]byte{byte(b)}, rom.CHRBlockSize))
	}

	c, err := rom.Read(&buf)
	if err != nil {
		t.Fatalf("building test cartridge: %v", err)
	}
	return c
}

func TestNROMSingleBankMirrors(t *testing.T) {
	c := buildCartridge(t, 0, 1, 1)
	m, id, fellBack := New(c)
	if id != 0 || fellBack {
		t.Fatalf("got id=%d fellBack=%v, want 0/false", id, fellBack)
	}

	if got, want := m.PRGRead(0x8000), uint8(0); got != want {
		t.Errorf("PRGRead($8000) = %d, want %d", got, want)
	}
	if got, want := m.PRGRead(0xC000), uint8(0); got != want {
		t.Errorf("PRGRead($C000) = %d, want %d (mirrored single bank)", got, want)
	}
}

func TestUxROMBankSwitch(t *testing.T) {
	c := buildCartridge(t, 2, 4, 0)
	m, _, _ := New(c)

	m.PRGWrite(0x8000, 2)
	if got := m.PRGRead(0x8000); got != 2 {
		t.Errorf("after selecting bank 2, PRGRead($8000) = %d, want 2", got)
	}
	if got := m.PRGRead(0xC000); got != 3 {
		t.Errorf("PRGRead($C000) = %d, want 3 (fixed last bank)", got)
	}
}

func TestCNROMChrBankSwitch(t *testing.T) {
	c := buildCartridge(t, 3, 1, 4)
	m, _, _ := New(c)

	m.PRGWrite(0x8000, 3)
	if got := m.CHRRead(0x0000); got != 3 {
		t.Errorf("CHRRead($0000) = %d, want bank 3", got)
	}
}

// TestMMC1ShiftResetRegardlessOfProgress pins spec scenario 7: writing a
// value with bit 7 set resets the shift register to 0x10 and forces
// prgMode back to 3, no matter how many of the 5 bits had shifted in.
func TestMMC1ShiftResetRegardlessOfProgress(t *testing.T) {
	c := buildCartridge(t, 1, 4, 0)
	m, _, _ := New(c)

	m.PRGWrite(0x8000, 0) // 1 of 5 bits shifted
	m.PRGWrite(0x8000, 1) // 2 of 5
	m.PRGWrite(0x8000, 0x80)

	mm := m.(*mmc1)
	if mm.shift != 0x10 || mm.shiftCount != 0 {
		t.Fatalf("after reset write, shift=%#x count=%d, want 0x10/0", mm.shift, mm.shiftCount)
	}
	if mm.prgMode != 3 {
		t.Fatalf("after reset write, prgMode=%d, want 3", mm.prgMode)
	}
}

func TestMMC1FullWriteSequenceSelectsPRGBank(t *testing.T) {
	c := buildCartridge(t, 1, 4, 0)
	m, _, _ := New(c)

	// Control is left at its power-on prgMode=3 (switchable $8000, fixed
	// last bank at $C000). Bank 5 wraps to bank 1 on a 4-bank cartridge.
	writeMMC1(m, 0xE000, 0x05) // PRG bank register -> select bank 1
	if got := m.PRGRead(0x8000); got != 1 {
		t.Errorf("PRGRead($8000) after bank select = %d, want bank 1", got)
	}
}

// writeMMC1 performs the 5-write serial shift sequence for val into the
// register selected by addr.
func writeMMC1(m Mapper, addr uint16, val uint8) {
	for i := 0; i < 5; i++ {
		m.PRGWrite(addr, (val>>i)&1)
	}
}

func TestMMC3ScanlineIRQ(t *testing.T) {
	c := buildCartridge(t, 4, 8, 8)
	m, _, _ := New(c)

	m.PRGWrite(0xC000, 2) // IRQ latch = 2
	m.PRGWrite(0xC001, 0) // request reload
	m.PRGWrite(0xE001, 0) // enable

	m.Scanline() // reload to 2
	if m.IRQPending() {
		t.Fatal("IRQ pending immediately after reload, want not yet")
	}
	m.Scanline() // 2 -> 1
	m.Scanline() // 1 -> 0, pending
	if !m.IRQPending() {
		t.Fatal("IRQ not pending after counter reached 0 with IRQs enabled")
	}
	m.ClearIRQ()
	if m.IRQPending() {
		t.Fatal("IRQ still pending after ClearIRQ")
	}
}
