// Package asm is the IE32 assembler: a small lexer/parser/encoder pipeline,
// adapted from the teacher's RiSC-32 assembler (pkg/asm in
// _examples/bassosimone-risc32) and retargeted to this architecture's
// 32-bit opcode/RA/RB/RC/imm encoding and flat-binary output format, in
// place of the teacher's line-oriented hex-text bytecode.
//
// Assembly source is one instruction or directive per line. Comments start
// with ';' and run to end of line. A label is either a bare "name:" line or
// a "name: MNEMONIC ..." prefix, and names the byte offset, from ROM base,
// of whatever follows it. Used as an operand, a label becomes the absolute
// ROM address (ROM base plus that offset), or, for the PC-relative branch
// forms, that address minus the instruction's own address. Two directives
// are supported: ".word <value>" emits one raw 32-bit word, and
// ".ascii \"text\"" emits the bytes of text packed little-endian into words,
// zero-padded to a word boundary. The text of an .ascii literal cannot
// contain ';' (it starts a comment) or ':' (it marks a label).
package asm

import "io"

// Assemble reads assembly source from r and returns the assembled flat
// binary image, ready to be written to a ROM file.
func Assemble(r io.Reader) ([]byte, error) {
	stmts, err := parse(startLexing(r))
	if err != nil {
		return nil, err
	}
	labels := assignAddresses(stmts)
	return encode(stmts, labels)
}
