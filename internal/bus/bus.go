// Package bus implements the uniform memory bus: a single view over ROM,
// RAM, and memory-mapped devices, addressed by 32-bit guest address. The
// execution engine issues a single pair of width-tagged load/store
// operations against the bus, independent of whether the target is backing
// memory or a device register.
package bus

import (
	"encoding/binary"

	"github.com/dankbox/ie32vm/internal/arch"
)

// Bus owns the flat backing buffer (ROM followed by RAM) and a device
// registry, and dispatches reads/writes between them.
type Bus struct {
	mem      [arch.BackingBufferSize]byte
	Registry Registry
}

// New returns a Bus with a zeroed backing buffer and no registered devices.
func New() *Bus {
	return &Bus{}
}

// InRAM reports whether addr falls in the RAM region.
func InRAM(addr uint32) bool {
	return addr >= arch.RAMBase && addr < arch.RAMBase+arch.RAMSize
}

// InROM reports whether addr falls in the ROM region.
func InROM(addr uint32) bool {
	return addr >= arch.ROMBase && addr < arch.ROMBase+arch.ROMSize
}

// inRealMemory reports whether addr is backed by the flat buffer (ROM or
// RAM). The original source computed this with AND across two revisions;
// the OR form is the one that actually matches "is this RAM or ROM", and is
// the one implemented here.
func inRealMemory(addr uint32) bool {
	return InRAM(addr) || InROM(addr)
}

// realOffset maps a guest address known to be in RAM or ROM to an offset
// into the flat backing buffer.
func realOffset(addr uint32) uint32 {
	if InROM(addr) {
		return addr - arch.ROMBase
	}
	return addr - arch.RAMBase + arch.ROMSize
}

// LoadROM copies data verbatim into the start of the backing buffer (ROM
// offset 0). Callers are responsible for checking data fits within ROM.
func (b *Bus) LoadROM(data []byte) {
	copy(b.mem[:arch.ROMSize], data)
}

// ReadByte reads a byte at addr.
func (b *Bus) ReadByte(addr uint32) uint8 {
	if inRealMemory(addr) {
		return b.mem[realOffset(addr)]
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		return dev.ReadByte(addr)
	}
	return 0
}

// ReadHword reads a little-endian half-word at addr.
func (b *Bus) ReadHword(addr uint32) uint16 {
	if inRealMemory(addr) {
		off := realOffset(addr)
		return binary.LittleEndian.Uint16(b.mem[off : off+2])
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		return dev.ReadHword(addr)
	}
	return 0
}

// ReadWord reads a little-endian word at addr.
func (b *Bus) ReadWord(addr uint32) uint32 {
	if inRealMemory(addr) {
		off := realOffset(addr)
		return binary.LittleEndian.Uint32(b.mem[off : off+4])
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		return dev.ReadWord(addr)
	}
	return 0
}

// WriteByte writes a byte at addr.
func (b *Bus) WriteByte(addr uint32, v uint8) {
	if inRealMemory(addr) {
		b.mem[realOffset(addr)] = v
		return
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		dev.WriteByte(addr, v)
	}
	// device miss: write silently dropped
}

// WriteHword writes a little-endian half-word at addr.
func (b *Bus) WriteHword(addr uint32, v uint16) {
	if inRealMemory(addr) {
		off := realOffset(addr)
		binary.LittleEndian.PutUint16(b.mem[off:off+2], v)
		return
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		dev.WriteHword(addr, v)
	}
}

// WriteWord writes a little-endian word at addr.
func (b *Bus) WriteWord(addr uint32, v uint32) {
	if inRealMemory(addr) {
		off := realOffset(addr)
		binary.LittleEndian.PutUint32(b.mem[off:off+4], v)
		return
	}
	if dev, ok := b.Registry.Resolve(addr); ok {
		dev.WriteWord(addr, v)
	}
}
