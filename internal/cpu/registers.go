package cpu

import "github.com/dankbox/ie32vm/internal/arch"

// Registers is the 16-entry architectural register file: R0..R11 general
// purpose, PC, LR, SP, SR special. It is an index-addressable view, the
// "portable design names the index-addressable layout explicitly" option
// from the architecture's design notes, in place of pointer-cast struct
// indexing.
type Registers [arch.NumRegisters]uint32

// Reset zeroes every register except PC and SP, which take their reset
// values (ROM base and the top of RAM, respectively).
func (r *Registers) Reset() {
	for i := range r {
		r[i] = 0
	}
	r[arch.PC] = arch.ROMBase
	r[arch.SP] = arch.RAMBase + arch.RAMSize - 4
}

// Read returns the value of the register at index. index must be in
// 0..15; it always is, since every caller derives it from a 4-bit
// instruction field.
func (r *Registers) Read(index uint32) uint32 {
	return r[index]
}

// Write overwrites the register at index with v.
func (r *Registers) Write(index uint32, v uint32) {
	r[index] = v
}

// Snapshot returns a value suitable for formatted dumping (used by DUMP).
func (r *Registers) Snapshot() Registers {
	return *r
}
