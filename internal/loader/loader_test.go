package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dankbox/ie32vm/internal/arch"
	"github.com/dankbox/ie32vm/internal/bus"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.bin")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadCopiesBytesIntoROM(t *testing.T) {
	path := writeTempFile(t, []byte{0x78, 0x56, 0x34, 0x12})
	b := bus.New()

	if err := Load(b, path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := b.ReadWord(arch.ROMBase); got != 0x12345678 {
		t.Errorf("ReadWord = 0x%x, want 0x12345678", got)
	}
}

func TestLoadRejectsOversizedProgram(t *testing.T) {
	path := writeTempFile(t, make([]byte, arch.ROMSize+1))
	b := bus.New()

	err := Load(b, path)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Load err = %v, want ErrTooLarge", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	b := bus.New()
	err := Load(b, filepath.Join(t.TempDir(), "missing.bin"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load err = %v, want ErrNotFound", err)
	}
}
