package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned for memory accesses beyond the 4KB
	// address space.
	ErrOutOfBounds = errors.New("memory address out of bounds")

	// ErrInvalidRegister is returned for register indexes outside V0-VF.
	ErrInvalidRegister = errors.New("invalid register index")
)

// UnknownInstructionError is returned when decoding reaches an opcode
// combination that has no handler. It is fatal: silently advancing past
// an unknown instruction would corrupt the decode alignment of all
// following instructions.
type UnknownInstructionError struct {
	Opcode uint16 // raw instruction word
	PC     uint16 // address the instruction was fetched from
}

func (e UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction 0x%04X at address 0x%04X", e.Opcode, e.PC)
}
