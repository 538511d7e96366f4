// Package mapper implements the cartridge mapper variants (iNES mapper
// IDs 0-4): the address-translation and bank-switching hardware that
// sits between the Bus/PPU and the raw PRG/CHR arrays held by a
// rom.Cartridge.
package mapper

import (
	"fmt"

	"github.com/nescore/gonen/internal/rom"
)

// Mirroring modes a mapper may report, extending rom's fixed header
// modes with the two MMC1 single-screen variants.
const (
	MirrorHorizontal = rom.MirrorHorizontal
	MirrorVertical   = rom.MirrorVertical
	MirrorFourScreen = rom.MirrorFourScreen
	MirrorSingleLow  = 10
	MirrorSingleHigh = 11
)

// Mapper is the capability interface every mapper variant implements.
// It is a tagged-variant design, not a class hierarchy: each concrete
// type below owns its register state inline and is selected once, at
// load time, by id.
type Mapper interface {
	PRGRead(addr uint16) uint8
	PRGWrite(addr uint16, v uint8)
	CHRRead(addr uint16) uint8
	CHRWrite(addr uint16, v uint8)
	MirroringMode() uint8

	// Scanline is driven by the PPU's A12-rising-edge heuristic during
	// background/sprite pattern fetches. Only mapper 4 does anything
	// with it; every other mapper no-ops.
	Scanline()
	IRQPending() bool
	ClearIRQ()
}

type factory func(c *rom.Cartridge) Mapper

var registry = map[uint8]factory{}

func register(id uint8, f factory) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("mapper: id %d already registered", id))
	}
	registry[id] = f
}

// New returns a fresh Mapper bound to c, selected by c's iNES mapper
// number. If the number is unsupported, it falls back to mapper 0 and
// reports that fact so the caller can surface a warning (spec's
// documented either/or for UnsupportedMapper, resolved in DESIGN.md
// toward the permissive branch).
func New(c *rom.Cartridge) (m Mapper, id uint8, fellBack bool) {
	id = c.MapperNum()
	f, ok := registry[id]
	if !ok {
		return registry[0](c), 0, true
	}
	return f(c), id, false
}

// noIRQ is embedded by mappers with no scanline counter.
type noIRQ struct{}

func (noIRQ) Scanline()        {}
func (noIRQ) IRQPending() bool { return false }
func (noIRQ) ClearIRQ()        {}
