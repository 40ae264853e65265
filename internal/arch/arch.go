// Package arch defines the fixed numeric parameters of the IE32 architecture:
// word width, memory region layout, instruction field layout, and status
// register flag bits. Every other package imports these constants rather
// than redefining them.
package arch

// WordSizeBits is the width of the machine word.
const WordSizeBits = 32

// Memory region layout. ROM and RAM are disjoint half-open ranges
// [base, base+size). Everything else is a device address.
const (
	ROMBase = 0x01000000
	ROMSize = 256 * 1024 // 256 KiB

	RAMBase = 0x02000000
	RAMSize = 32 * 1024 // 32 KiB
)

// BackingBufferSize is the size of the flat byte array backing ROM and RAM,
// laid out as ROM first, then RAM.
const BackingBufferSize = ROMSize + RAMSize

// Instruction field masks and bit offsets. Every instruction is one 32-bit
// word: <Opcode:8><RA:4><RB:4><RC:4><unused:12>, with a 16-bit immediate
// overlapping RC and the low 12 bits.
const (
	OpcodeMask = 0xFF000000
	RAMask     = 0x00F00000
	RBMask     = 0x000F0000
	RCMask     = 0x0000F000
	ImmMask    = 0x0000FFFF

	OpcodeOffset = 24
	RAOffset     = 20
	RBOffset     = 16
	RCOffset     = 12
	ImmOffset    = 0
)

// Register file layout: 16 index-addressable registers, R0..R11 general
// purpose, the rest special.
const (
	R0 = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	PC
	LR
	SP
	SR

	NumRegisters = 16
)

// Status register flag bits. The ALU flags (bits 0..2) are cleared at the
// start of every instruction's SR update and then OR'd with the flags that
// instruction computes. The fault bits are sticky.
const (
	SRZero   = 0x00000001 // Z: last ALU result was zero
	SROver   = 0x00000002 // O: last ALU result overflowed
	SRNeg    = 0x00000004 // N: last ALU result had bit 31 set
	SRALUMask = SRZero | SROver | SRNeg

	SRDecodeFault = 0x40000000 // unknown opcode encountered
	SRFault       = 0x80000000 // reserved general fault
)

// Opcodes. Rows the spec marks as "implementation-defined" (everything from
// AND onward) are numbered sequentially after the last spec-pinned opcode;
// MUL/MULI/PUSHI/CALL/RET occupy the opcode namespace but have no defined
// semantics in this core, so the execution engine treats them exactly like
// any other unassigned opcode (decode fault).
const (
	OpADD   = 0x00
	OpADDI  = 0x01
	OpADDUI = 0x02
	OpLUH   = 0x03
	OpMUL   = 0x04 // reserved, unspecified
	OpMULI  = 0x05 // reserved, unspecified
	OpPUSH  = 0x06
	OpPUSHI = 0x07 // reserved, unspecified
	OpPOP   = 0x08
	OpJUMP  = 0x09
	OpJUMPI = 0x0A
	OpBR    = 0x0B
	OpBI    = 0x0C
	OpCALL  = 0x0D // reserved, unspecified
	OpMOV   = 0x0E
	OpHALT  = 0x0F
	OpDUMP  = 0x10
	OpLOAD  = 0x11
	OpSTOR  = 0x12
	OpRET   = 0x13 // reserved, unspecified
	OpJZ    = 0x14
	OpJZI   = 0x15
	OpBZ    = 0x16
	OpBZI   = 0x17
	OpJLT   = 0x18
	OpJLTI  = 0x19
	OpBLT   = 0x1A
	OpBLTI  = 0x1B
	OpMOVZ  = 0x1C
	OpMOVLT = 0x1D

	OpAND   = 0x1E
	OpANDI  = 0x1F
	OpOR    = 0x20
	OpORI   = 0x21
	OpINV   = 0x22
	OpXOR   = 0x23
	OpXORI  = 0x24
	OpLOADH = 0x25
	OpSTORH = 0x26
	OpLOADB = 0x27
	OpSTORB = 0x28
	OpSAR   = 0x29
	OpSLL   = 0x2A
	OpSLR   = 0x2B
	OpSARI  = 0x2C
	OpBALI  = 0x2D
)
