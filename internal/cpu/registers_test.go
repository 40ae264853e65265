package cpu

import (
	"testing"

	"github.com/dankbox/ie32vm/internal/arch"
)

func TestRegistersResetGeneralPurposeZero(t *testing.T) {
	var r Registers
	r[arch.R3] = 0xdeadbeef
	r.Reset()

	if got := r.Read(arch.R3); got != 0 {
		t.Errorf("R3 = 0x%x, want 0", got)
	}
}

func TestRegistersResetPCAndSP(t *testing.T) {
	var r Registers
	r.Reset()

	if got := r.Read(arch.PC); got != arch.ROMBase {
		t.Errorf("PC = 0x%x, want 0x%x", got, arch.ROMBase)
	}
	want := uint32(arch.RAMBase + arch.RAMSize - 4)
	if got := r.Read(arch.SP); got != want {
		t.Errorf("SP = 0x%x, want 0x%x", got, want)
	}
}

func TestRegistersWriteRead(t *testing.T) {
	var r Registers
	r.Write(arch.R7, 0x12345678)
	if got := r.Read(arch.R7); got != 0x12345678 {
		t.Errorf("R7 = 0x%x, want 0x12345678", got)
	}
}

func TestRegistersSnapshotIsIndependentCopy(t *testing.T) {
	var r Registers
	r.Write(arch.R0, 1)
	snap := r.Snapshot()
	r.Write(arch.R0, 2)

	if got := snap.Read(arch.R0); got != 1 {
		t.Errorf("snapshot R0 = %d, want 1 (snapshot must not alias live registers)", got)
	}
}
