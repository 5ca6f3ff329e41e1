// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a CHIP-8 ROM file as a raw binary image and validates
// that it fits into memory at the configured load address. CHIP-8 ROM
// files have no header, the bytes are the program.
func (l *Loader) Load(opts options.Program) ([]byte, error) {
	file, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", opts.Input, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", opts.Input, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", opts.Input)
	}
	if int(opts.BaseAddress)+len(data) > chip8.MemorySize {
		return nil, fmt.Errorf("rom of %d bytes does not fit into memory at load address 0x%04X",
			len(data), opts.BaseAddress)
	}

	return data, nil
}
