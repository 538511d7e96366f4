// Package bus wires the CPU, PPU, mapper and controllers into a single
// NES system: it decodes the CPU's 16-bit address space per the
// documented memory map, owns the 2KiB of console RAM, drives OAM DMA,
// and steps the PPU three times per CPU cycle to produce whole frames.
package bus

import (
	"fmt"

	"github.com/nescore/gonen/internal/controller"
	"github.com/nescore/gonen/internal/cpu"
	"github.com/nescore/gonen/internal/mapper"
	"github.com/nescore/gonen/internal/ppu"
	"github.com/nescore/gonen/internal/rom"
)

// maxFrameTicks bounds a single RunFrame call so a pathological ROM
// (or a bug) can never hang the host; it is far above any real frame's
// PPU-dot count (341*262 = 89342).
const maxFrameTicks = 89342 * 4

const (
	ramSize       = 0x0800
	oamDMARegAddr = 0x4014
	ctrl1RegAddr  = 0x4016
	ctrl2RegAddr  = 0x4017
)

// System is the complete wired console: one cartridge, one CPU, one
// PPU and two controller ports.
type System struct {
	cpu    *cpu.CPU
	ppu    *ppu.PPU
	mapper mapper.Mapper
	cart   *rom.Cartridge

	ram [ramSize]uint8

	pad1, pad2 *controller.Controller

	dmaPending bool
	dmaPage    uint8
	oddCycle   bool

	Warnings []string
}

// New builds a System around an already-loaded cartridge. If the
// cartridge's mapper number is unsupported, it falls back to mapper 0
// and records a warning rather than failing the load (spec's
// UnsupportedMapper resolution).
func New(cart *rom.Cartridge) *System {
	m, id, fellBack := mapper.New(cart)

	s := &System{
		mapper: m,
		cart:   cart,
		pad1:   controller.New(),
		pad2:   controller.New(),
	}
	if fellBack {
		s.Warnings = append(s.Warnings, fmt.Sprintf("bus: mapper %d unsupported, falling back to mapper 0", cart.MapperNum()))
	}
	_ = id

	s.ppu = ppu.New(m)
	s.cpu = cpu.New(s)
	return s
}

// Pad1 and Pad2 expose the controller ports for a host to feed button
// state into via SetButton.
func (s *System) Pad1() *controller.Controller { return s.pad1 }
func (s *System) Pad2() *controller.Controller { return s.pad2 }

// PPU exposes the PPU for a host to read the framebuffer from.
func (s *System) PPU() *ppu.PPU { return s.ppu }

// Reset fans out to the CPU and PPU resets.
func (s *System) Reset() {
	s.cpu.Reset()
	s.ppu.Reset()
	s.dmaPending = false
}

// RunFrame steps the system until the PPU reports a completed frame,
// per the orchestrator's documented loop: one CPU instruction, then
// three PPU dots per CPU cycle, delivering any pending NMI between
// dots. A watchdog prevents an infinite loop on a pathological ROM.
func (s *System) RunFrame() {
	startFrame := s.ppu.Frame()
	ticks := 0
	for s.ppu.Frame() == startFrame {
		c := s.stepCPU()
		for i := 0; i < 3*c; i++ {
			s.ppu.Step()
			if s.ppu.NMI() {
				s.cpu.RequestNMI()
			}
			s.oddCycle = !s.oddCycle
		}
		if s.mapper.IRQPending() {
			s.cpu.SetIRQLine(true)
		} else {
			s.cpu.SetIRQLine(false)
		}

		ticks++
		if ticks > maxFrameTicks {
			s.Warnings = append(s.Warnings, "bus: watchdog tripped, frame did not complete after maxFrameTicks CPU steps")
			return
		}
	}
}

// stepCPU runs one CPU.Step, folding in OAM DMA's 513/514-cycle cost
// when a DMA was triggered by the preceding $4014 write.
func (s *System) stepCPU() int {
	c := s.cpu.Step()
	if s.dmaPending {
		s.dmaPending = false
		c += s.runOAMDMA()
	}
	return c
}

// runOAMDMA copies 256 bytes from CPU page dmaPage<<8 into PPU OAM,
// charging 513 cycles on an even CPU cycle or 514 on an odd one (one
// dummy cycle plus 256 read/write pairs, plus the alignment cycle).
func (s *System) runOAMDMA() int {
	base := uint16(s.dmaPage) << 8
	for i := uint16(0); i < 256; i++ {
		v := s.CPURead(base + i)
		s.ppu.WriteOAMDMA(v)
	}
	if s.oddCycle {
		return 514
	}
	return 513
}

// CPURead implements cpu.Bus, decoding the full CPU memory map.
func (s *System) CPURead(addr uint16) uint8 {
	switch {
	case addr <= 0x1FFF:
		return s.ram[addr&0x07FF]
	case addr <= 0x3FFF:
		return s.ppu.ReadRegister(0x2000 + (addr & 0x0007))
	case addr == ctrl1RegAddr:
		return s.pad1.Read()
	case addr == ctrl2RegAddr:
		return s.pad2.Read()
	case addr <= 0x4017:
		return 0 // APU registers: stubbed, read as 0 (open bus is not emulated)
	case addr <= 0x5FFF:
		return 0 // unmapped expansion region
	case addr <= 0x7FFF:
		return s.cart.SRAMRead(addr)
	default:
		return s.mapper.PRGRead(addr)
	}
}

// CPUWrite implements cpu.Bus, decoding the full CPU memory map.
func (s *System) CPUWrite(addr uint16, v uint8) {
	switch {
	case addr <= 0x1FFF:
		s.ram[addr&0x07FF] = v
	case addr <= 0x3FFF:
		s.ppu.WriteRegister(0x2000+(addr&0x0007), v)
	case addr == oamDMARegAddr:
		s.dmaPending = true
		s.dmaPage = v
	case addr == ctrl1RegAddr:
		s.pad1.Write(v)
		s.pad2.Write(v)
	case addr <= 0x4017:
		// APU registers: stubbed, writes discarded (spec §9 non-goal).
	case addr <= 0x5FFF:
		// unmapped expansion region
	case addr <= 0x7FFF:
		s.cart.SRAMWrite(addr, v)
	default:
		s.mapper.PRGWrite(addr, v)
	}
}
