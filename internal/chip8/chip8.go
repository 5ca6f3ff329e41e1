// Package chip8 implements the CHIP-8 interpreter core.
// CHIP-8 is an interpreted programming language from the 1970s designed for simple games.
// This package owns the machine state and the fetch-decode-execute cycle;
// display output, keyboard input and real-time timers are external
// collaborators attached through hook interfaces.
package chip8

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the total memory capacity in bytes.
	MemorySize = 0x1000

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16

	// FlagRegister is the index of VF, used as collision/carry flag.
	FlagRegister = 0xF
)

// CPU represents the CHIP-8 machine state: 4KB of memory, 16 general
// purpose 8 bit registers, the 16 bit index register I, the program
// counter and the stack pointer. It is exclusively owned by a single
// execution goroutine for the lifetime of one run, there is no locking.
type CPU struct {
	mem [MemorySize]byte
	v   [NumRegisters]byte
	i   uint16
	pc  uint16
	sp  uint8

	display Display
	timers  Timers

	logger *log.Logger
	trace  bool
	cycles uint64
}

// New returns a new CPU with the program counter set to the program
// start address and all other state zeroed.
func New(logger *log.Logger) *CPU {
	return &CPU{
		pc:     ProgramStart,
		logger: logger,
	}
}

// AttachDisplay connects a display collaborator that receives
// clear-screen and sprite-draw requests.
func (c *CPU) AttachDisplay(display Display) {
	c.display = display
}

// AttachTimers connects a timer collaborator for the delay and sound
// timers. No instruction in the currently supported set accesses the
// timers, the hook point exists for embedders that extend the core.
func (c *CPU) AttachTimers(timers Timers) {
	c.timers = timers
}

// EnableTrace enables the per-instruction diagnostic trace. The trace
// is observational only and does not affect state transitions.
func (c *CPU) EnableTrace() {
	c.trace = true
}

// Cycles returns the number of instructions executed so far.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// LoadProgram copies the given bytes verbatim into memory starting at
// the base address. No header parsing is done, the data is treated as a
// raw CHIP-8 image.
func (c *CPU) LoadProgram(data []byte, base uint16) error {
	if int(base)+len(data) > MemorySize {
		return fmt.Errorf("loading %d bytes at address 0x%04X: %w", len(data), base, ErrOutOfBounds)
	}
	copy(c.mem[base:], data)
	return nil
}

// ReadByte reads a byte from memory.
func (c *CPU) ReadByte(address uint16) (byte, error) {
	if address >= MemorySize {
		return 0, fmt.Errorf("reading memory at address 0x%04X: %w", address, ErrOutOfBounds)
	}
	return c.mem[address], nil
}

// WriteByte writes a byte to memory.
func (c *CPU) WriteByte(address uint16, value byte) error {
	if address >= MemorySize {
		return fmt.Errorf("writing memory at address 0x%04X: %w", address, ErrOutOfBounds)
	}
	c.mem[address] = value
	return nil
}

// ReadWord reads a 16 bit big-endian word from memory, the high byte is
// stored at the given address and the low byte at address+1.
func (c *CPU) ReadWord(address uint16) (uint16, error) {
	if int(address)+1 >= MemorySize {
		return 0, fmt.Errorf("reading word at address 0x%04X: %w", address, ErrOutOfBounds)
	}
	return uint16(c.mem[address])<<8 | uint16(c.mem[address+1]), nil
}

// WriteWord splits a 16 bit word into its big-endian bytes and writes
// them at address and address+1.
func (c *CPU) WriteWord(address, value uint16) error {
	if int(address)+1 >= MemorySize {
		return fmt.Errorf("writing word at address 0x%04X: %w", address, ErrOutOfBounds)
	}
	c.mem[address] = byte(value >> 8)
	c.mem[address+1] = byte(value)
	return nil
}

// ReadRegister reads a general purpose register V0-VF.
func (c *CPU) ReadRegister(index byte) (byte, error) {
	if index >= NumRegisters {
		return 0, fmt.Errorf("reading register V%d: %w", index, ErrInvalidRegister)
	}
	return c.v[index], nil
}

// WriteRegister writes a general purpose register V0-VF.
func (c *CPU) WriteRegister(index, value byte) error {
	if index >= NumRegisters {
		return fmt.Errorf("writing register V%d: %w", index, ErrInvalidRegister)
	}
	c.v[index] = value
	return nil
}

// I returns the index register.
func (c *CPU) I() uint16 {
	return c.i
}

// SetI sets the index register.
func (c *CPU) SetI(value uint16) {
	c.i = value
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.pc
}

// SetPC sets the program counter.
func (c *CPU) SetPC(value uint16) {
	c.pc = value
}

// SP returns the stack pointer.
func (c *CPU) SP() uint8 {
	return c.sp
}

// SetSP sets the stack pointer.
func (c *CPU) SetSP(value uint8) {
	c.sp = value
}
