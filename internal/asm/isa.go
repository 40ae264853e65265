package asm

import "github.com/dankbox/ie32vm/internal/arch"

// field identifies which part of an encoded instruction word an assembly
// operand fills in.
type field int

const (
	fieldRA field = iota
	fieldRB
	fieldRC
	fieldImm
)

// mnemonicSpec describes how to parse and encode one mnemonic: its opcode,
// the ordered operand fields it expects, and whether a label operand
// should be resolved relative to the instruction's own address (true for
// the PC-relative branch forms) or as an absolute ROM address (everything
// else, including the register+immediate jump forms, where the base
// register's role is up to the program).
type mnemonicSpec struct {
	opcode     uint32
	operands   []field
	pcRelative bool
}

// mnemonics is the table of assembly mnemonics this assembler accepts,
// grounded on the instruction semantics of internal/cpu.Execute.
var mnemonics = map[string]mnemonicSpec{
	"ADD":   {opcode: arch.OpADD, operands: []field{fieldRC, fieldRA, fieldRB}},
	"ADDI":  {opcode: arch.OpADDI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"ADDUI": {opcode: arch.OpADDUI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"LUH":   {opcode: arch.OpLUH, operands: []field{fieldRA, fieldImm}},
	"PUSH":  {opcode: arch.OpPUSH, operands: []field{fieldRA}},
	"POP":   {opcode: arch.OpPOP, operands: []field{fieldRA}},
	"JUMP":  {opcode: arch.OpJUMP, operands: []field{fieldRA}},
	"JUMPI": {opcode: arch.OpJUMPI, operands: []field{fieldRA, fieldImm}},
	"BR":    {opcode: arch.OpBR, operands: []field{fieldRA}},
	"BI":    {opcode: arch.OpBI, operands: []field{fieldImm}, pcRelative: true},
	"MOV":   {opcode: arch.OpMOV, operands: []field{fieldRB, fieldRA}},
	"HALT":  {opcode: arch.OpHALT},
	"DUMP":  {opcode: arch.OpDUMP},
	"LOAD":  {opcode: arch.OpLOAD, operands: []field{fieldRA, fieldRB}},
	"STOR":  {opcode: arch.OpSTOR, operands: []field{fieldRA, fieldRB}},
	"JZ":    {opcode: arch.OpJZ, operands: []field{fieldRA, fieldRB}},
	"JZI":   {opcode: arch.OpJZI, operands: []field{fieldRA, fieldRB, fieldImm}},
	"BZ":    {opcode: arch.OpBZ, operands: []field{fieldRA, fieldRB}},
	"BZI":   {opcode: arch.OpBZI, operands: []field{fieldRA, fieldImm}, pcRelative: true},
	"JLT":   {opcode: arch.OpJLT, operands: []field{fieldRA, fieldRB}},
	"JLTI":  {opcode: arch.OpJLTI, operands: []field{fieldRA, fieldRB, fieldImm}},
	"BLT":   {opcode: arch.OpBLT, operands: []field{fieldRA, fieldRB}},
	"BLTI":  {opcode: arch.OpBLTI, operands: []field{fieldRA, fieldImm}, pcRelative: true},
	"MOVZ":  {opcode: arch.OpMOVZ, operands: []field{fieldRC, fieldRA, fieldRB}},
	"MOVLT": {opcode: arch.OpMOVLT, operands: []field{fieldRC, fieldRA, fieldRB}},
	"AND":   {opcode: arch.OpAND, operands: []field{fieldRC, fieldRA, fieldRB}},
	"ANDI":  {opcode: arch.OpANDI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"OR":    {opcode: arch.OpOR, operands: []field{fieldRC, fieldRA, fieldRB}},
	"ORI":   {opcode: arch.OpORI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"INV":   {opcode: arch.OpINV, operands: []field{fieldRB, fieldRA}},
	"XOR":   {opcode: arch.OpXOR, operands: []field{fieldRC, fieldRA, fieldRB}},
	"XORI":  {opcode: arch.OpXORI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"LOADH": {opcode: arch.OpLOADH, operands: []field{fieldRA, fieldRB}},
	"STORH": {opcode: arch.OpSTORH, operands: []field{fieldRA, fieldRB}},
	"LOADB": {opcode: arch.OpLOADB, operands: []field{fieldRA, fieldRB}},
	"STORB": {opcode: arch.OpSTORB, operands: []field{fieldRA, fieldRB}},
	"SAR":   {opcode: arch.OpSAR, operands: []field{fieldRC, fieldRA, fieldRB}},
	"SLL":   {opcode: arch.OpSLL, operands: []field{fieldRC, fieldRA, fieldRB}},
	"SLR":   {opcode: arch.OpSLR, operands: []field{fieldRC, fieldRA, fieldRB}},
	"SARI":  {opcode: arch.OpSARI, operands: []field{fieldRB, fieldRA, fieldImm}},
	"BALI":  {opcode: arch.OpBALI, operands: []field{fieldImm}, pcRelative: true},
}

// registerNames maps assembly register operand spellings to register file
// indices.
var registerNames = map[string]uint32{
	"R0": arch.R0, "R1": arch.R1, "R2": arch.R2, "R3": arch.R3,
	"R4": arch.R4, "R5": arch.R5, "R6": arch.R6, "R7": arch.R7,
	"R8": arch.R8, "R9": arch.R9, "R10": arch.R10, "R11": arch.R11,
	"PC": arch.PC, "LR": arch.LR, "SP": arch.SP, "SR": arch.SR,
}
