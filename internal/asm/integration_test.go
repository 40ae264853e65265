package asm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dankbox/ie32vm/internal/arch"
	"github.com/dankbox/ie32vm/internal/bus"
	"github.com/dankbox/ie32vm/internal/cpu"
	"github.com/dankbox/ie32vm/internal/loader"
)

// TestAssembleLoadAndRun is the integration test SPEC_FULL.md §8 calls for:
// a program exercising every instruction form (RRR, RRI, RI, a label
// reference, .word, .ascii) assembled, written to a binary, loaded through
// internal/loader, and executed through cpu.CPU.Run, checked against the
// resulting register and memory state. This is the one property no
// per-package unit test can cover, since it requires all three packages
// (asm, loader, cpu) cooperating on a real binary image rather than
// handwritten instruction words.
func TestAssembleLoadAndRun(t *testing.T) {
	const source = `
; RI form: load the upper half of R4 with RAM's base address
LUH  R4, 0x0200

; RRI form: two immediate adds
ADDI R1, R0, 5
ADDI R2, R0, 3

; RRR form: add the two general-purpose registers
ADD  R3, R1, R2

; store and reload through the bus, round-tripping through RAM
STOR R3, R4
LOAD R5, R4

; label reference, PC-relative branch form: skip the next instruction
BI   skip
ADDI R5, R5, 100
skip:
HALT

.word 0xDEADBEEF
.ascii "hi"
`

	image, err := Assemble(strings.NewReader(source))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	path := filepath.Join(t.TempDir(), "program.bin")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	b := bus.New()
	if err := loader.Load(b, path); err != nil {
		t.Fatalf("loader.Load: %v", err)
	}

	c := cpu.New(b)
	c.Run()

	if got := c.Regs.Read(arch.R1); got != 5 {
		t.Errorf("R1 = %d, want 5", got)
	}
	if got := c.Regs.Read(arch.R2); got != 3 {
		t.Errorf("R2 = %d, want 3", got)
	}
	if got := c.Regs.Read(arch.R3); got != 8 {
		t.Errorf("R3 = %d, want 8", got)
	}
	if got := c.Regs.Read(arch.R4); got != arch.RAMBase {
		t.Errorf("R4 = 0x%x, want 0x%x", got, arch.RAMBase)
	}
	if got := c.Regs.Read(arch.R5); got != 8 {
		t.Errorf("R5 = %d, want 8 (BI must have skipped the ADDI that would make it 108)", got)
	}
	if got := b.ReadWord(arch.RAMBase); got != 8 {
		t.Errorf("RAM[RAMBase] = %d, want 8", got)
	}
}
