// Package loader reads a flat binary program into ROM. It has no
// opinion about instruction semantics; it is the thin external collaborator
// spec.md §6 describes, copying bytes verbatim starting at ROM offset 0.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/dankbox/ie32vm/internal/arch"
	"github.com/dankbox/ie32vm/internal/bus"
)

// ErrNotFound indicates the program file does not exist.
var ErrNotFound = errors.New("loader: program file not found")

// ErrTooLarge indicates the program binary exceeds the ROM size.
var ErrTooLarge = errors.New("loader: program exceeds ROM size")

// Load reads the file at path and copies its contents into b's ROM region.
func Load(b *bus.Bus, path string) error {
	fp, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("loader: %w", err)
	}
	defer fp.Close()

	data, err := io.ReadAll(fp)
	if err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	if len(data) > arch.ROMSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrTooLarge, len(data), arch.ROMSize)
	}

	b.LoadROM(data)
	return nil
}
