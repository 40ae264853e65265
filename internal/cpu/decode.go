package cpu

import "github.com/dankbox/ie32vm/internal/arch"

// Instruction is a decoded instruction word.
type Instruction struct {
	Opcode uint32
	RA     uint32
	RB     uint32
	RC     uint32
	Imm    uint32 // zero-extended 16-bit immediate
}

// Decode splits a 32-bit instruction word into its fields.
func Decode(word uint32) Instruction {
	return Instruction{
		Opcode: (word & arch.OpcodeMask) >> arch.OpcodeOffset,
		RA:     (word & arch.RAMask) >> arch.RAOffset,
		RB:     (word & arch.RBMask) >> arch.RBOffset,
		RC:     (word & arch.RCMask) >> arch.RCOffset,
		Imm:    (word & arch.ImmMask) >> arch.ImmOffset,
	}
}

// SignExtendImm widens a 16-bit immediate to 32 bits, treating bit 15 as
// the sign.
func SignExtendImm(imm16 uint32) uint32 {
	if imm16&0x8000 != 0 {
		return 0xFFFF0000 | imm16
	}
	return imm16
}
