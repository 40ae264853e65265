package asm

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/dankbox/ie32vm/internal/arch"
)

// encode resolves every statement's operands against labels and appends its
// encoded bytes (little-endian, matching the bus's backing-buffer byte
// order) to the image.
func encode(stmts []*stmt, labels map[string]uint32) ([]byte, error) {
	var image []byte
	for _, s := range stmts {
		switch s.kind {
		case stmtInstruction:
			word, err := encodeInstruction(s, labels)
			if err != nil {
				return nil, err
			}
			image = appendWord(image, word)
		case stmtWord:
			if s.sizeWords == 0 {
				continue // bare "label:" line
			}
			if len(s.operands) != 1 {
				return nil, fmt.Errorf("line %d: .word takes exactly one value", s.lineno)
			}
			value, err := resolveImmediate32(s.operands[0], labels, s.addr, false, s.lineno)
			if err != nil {
				return nil, err
			}
			image = appendWord(image, value)
		case stmtAscii:
			image = append(image, asciiBytes(s.ascii)...)
		}
	}
	return image, nil
}

func appendWord(image []byte, word uint32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], word)
	return append(image, buf[:]...)
}

// asciiBytes returns text's bytes zero-padded up to the next word boundary.
func asciiBytes(text string) []byte {
	b := []byte(text)
	if pad := (4 - len(b)%4) % 4; pad != 0 {
		b = append(b, make([]byte, pad)...)
	}
	return b
}

func encodeInstruction(s *stmt, labels map[string]uint32) (uint32, error) {
	spec, ok := mnemonics[s.mnemonic]
	if !ok {
		return 0, fmt.Errorf("line %d: unknown mnemonic %q", s.lineno, s.mnemonic)
	}
	if len(s.operands) != len(spec.operands) {
		return 0, fmt.Errorf("line %d: %s takes %d operand(s), got %d",
			s.lineno, s.mnemonic, len(spec.operands), len(s.operands))
	}

	var ra, rb, rc, imm uint32
	for i, f := range spec.operands {
		tok := s.operands[i]
		switch f {
		case fieldRA:
			v, err := resolveRegister(tok, s.lineno)
			if err != nil {
				return 0, err
			}
			ra = v
		case fieldRB:
			v, err := resolveRegister(tok, s.lineno)
			if err != nil {
				return 0, err
			}
			rb = v
		case fieldRC:
			v, err := resolveRegister(tok, s.lineno)
			if err != nil {
				return 0, err
			}
			rc = v
		case fieldImm:
			instrAddr := arch.ROMBase + s.addr
			v, err := resolveImmediate16(tok, labels, instrAddr, spec.pcRelative, s.lineno)
			if err != nil {
				return 0, err
			}
			imm = v
		}
	}

	word := (spec.opcode << arch.OpcodeOffset) & arch.OpcodeMask
	word |= (ra << arch.RAOffset) & arch.RAMask
	word |= (rb << arch.RBOffset) & arch.RBMask
	word |= (rc << arch.RCOffset) & arch.RCMask
	word |= imm & arch.ImmMask
	return word, nil
}

func resolveRegister(tok string, lineno int) (uint32, error) {
	idx, ok := registerNames[strings.ToUpper(tok)]
	if !ok {
		return 0, fmt.Errorf("line %d: unknown register %q", lineno, tok)
	}
	return idx, nil
}

// resolveImmediate16 resolves tok, a literal or a label name, to a 16-bit
// immediate field value for the instruction at instrAddr (an absolute ROM
// address). pcRelative forms subtract the instruction's own address from a
// label's absolute address, so the mnemonic table reads as "branch to
// label"; non-pcRelative forms use the label's absolute address as-is.
func resolveImmediate16(tok string, labels map[string]uint32, instrAddr uint32, pcRelative bool, lineno int) (uint32, error) {
	value, err := resolveImmediate32(tok, labels, instrAddr, pcRelative, lineno)
	if err != nil {
		return 0, err
	}
	return value & 0xFFFF, nil
}

func resolveImmediate32(tok string, labels map[string]uint32, instrAddr uint32, pcRelative bool, lineno int) (uint32, error) {
	if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return uint32(n), nil
	}
	offset, ok := labels[tok]
	if !ok {
		return 0, fmt.Errorf("line %d: undefined label %q", lineno, tok)
	}
	absolute := arch.ROMBase + offset
	if pcRelative {
		return absolute - instrAddr, nil
	}
	return absolute, nil
}
