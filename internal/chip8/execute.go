package chip8

import (
	"context"
	"errors"
	"fmt"
)

// Step executes a single fetch-decode-execute cycle. Errors propagate
// unhandled to the caller, the run loop is the single reporting and
// halting boundary.
func (c *CPU) Step() error {
	pc := c.pc
	word, err := c.ReadWord(pc)
	if err != nil {
		return fmt.Errorf("fetching instruction: %w", err)
	}

	ins := decode(word)
	if c.trace {
		c.traceInstruction(pc, ins)
	}

	if err := c.execute(ins); err != nil {
		// an unknown instruction already identifies itself by opcode
		// and program counter, wrapping would duplicate both
		var unknownErr UnknownInstructionError
		if errors.As(err, &unknownErr) {
			return err
		}
		return fmt.Errorf("executing instruction 0x%04X at address 0x%04X: %w", word, pc, err)
	}

	c.cycles++
	return nil
}

// Run executes instructions until the context is cancelled, the cycle
// limit is reached (0 means unlimited) or an instruction fails.
func (c *CPU) Run(ctx context.Context, cycleLimit uint64) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if cycleLimit > 0 && c.cycles >= cycleLimit {
			return nil
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
}

// execute dispatches the decoded instruction to its handler. Every
// handler owns its program counter policy, the default is to advance
// by one instruction. The match is exhaustive over the operation
// enumeration, unknown instructions are a distinct fatal error.
func (c *CPU) execute(ins instruction) error {
	switch ins.op {
	case opCls:
		return c.opCls()
	case opRet:
		return c.opRet()
	case opJp:
		c.pc = ins.nnn
		return nil
	case opCall:
		return c.opCall(ins)
	case opSeByte:
		c.skipIf(c.v[ins.x] == ins.kk)
		return nil
	case opSneByte:
		c.skipIf(c.v[ins.x] != ins.kk)
		return nil
	case opSeReg:
		c.skipIf(c.v[ins.x] == c.v[ins.y])
		return nil
	case opLdByte:
		c.v[ins.x] = ins.kk
		c.pc += 2
		return nil
	case opAddByte:
		// 8 bit wraparound, VF is not touched. The modeled instruction
		// set never sets a carry flag for the byte immediate add.
		c.v[ins.x] += ins.kk
		c.pc += 2
		return nil
	case opLdReg:
		c.v[ins.x] = c.v[ins.y]
		c.pc += 2
		return nil
	case opOrReg:
		c.v[ins.x] |= c.v[ins.y]
		c.pc += 2
		return nil
	case opLdI:
		c.i = ins.nnn
		c.pc += 2
		return nil
	case opDrw:
		return c.opDrw(ins)
	case opBCD:
		return c.opBCD(ins)
	case opStoreRegs:
		return c.opStoreRegs()
	case opLoadRegs:
		return c.opLoadRegs()
	case opUnknown:
		return UnknownInstructionError{Opcode: ins.word, PC: c.pc}
	default:
		return UnknownInstructionError{Opcode: ins.word, PC: c.pc}
	}
}

// skipIf advances past the current instruction and skips the next one
// if the condition holds.
func (c *CPU) skipIf(condition bool) {
	c.pc += 2
	if condition {
		c.pc += 2
	}
}

// opCls forwards the clear-screen request to the display collaborator.
func (c *CPU) opCls() error {
	if c.display != nil {
		if err := c.display.Clear(); err != nil {
			return fmt.Errorf("clearing display: %w", err)
		}
	}
	c.pc += 2
	return nil
}

// opCall saves the current program counter and jumps to the call
// target. The call stack overlays low main memory: the save slot is the
// memory address equal to the stack pointer value (0, 2, 4, ...).
// The saved word is the address of the call instruction itself, not the
// address following it, so ret jumps back to the call. Both quirks are
// preserved from the modeled machine, programs that read low memory
// observe identical contents.
func (c *CPU) opCall(ins instruction) error {
	c.sp += 2
	if err := c.WriteWord(uint16(c.sp), c.pc); err != nil {
		return fmt.Errorf("saving return address: %w", err)
	}
	c.pc = ins.nnn
	return nil
}

// opRet reads the saved program counter from the low-memory stack slot
// and pops it. See opCall for the stack layout.
func (c *CPU) opRet() error {
	addr, err := c.ReadWord(uint16(c.sp))
	if err != nil {
		return fmt.Errorf("reading return address: %w", err)
	}
	c.pc = addr
	c.sp -= 2
	return nil
}

// opDrw forwards the sprite-draw request to the display collaborator
// and stores the collision flag in VF.
func (c *CPU) opDrw(ins instruction) error {
	if c.display != nil {
		collision, err := c.display.Draw(c.i, c.v[ins.x], c.v[ins.y], ins.n)
		if err != nil {
			return fmt.Errorf("drawing sprite: %w", err)
		}
		c.v[FlagRegister] = 0
		if collision {
			c.v[FlagRegister] = 1
		}
	}
	c.pc += 2
	return nil
}

// opBCD writes the three zero-padded decimal digits of Vx to memory at
// I, I+1 and I+2.
func (c *CPU) opBCD(ins instruction) error {
	value := c.v[ins.x]
	digits := [3]byte{value / 100, value / 10 % 10, value % 10}
	for offset, digit := range digits {
		if err := c.WriteByte(c.i+uint16(offset), digit); err != nil {
			return fmt.Errorf("writing decimal digit %d: %w", offset, err)
		}
	}
	c.pc += 2
	return nil
}

// opStoreRegs writes all 16 registers to memory at I..I+15. The
// modeled machine always transfers the full register file regardless
// of x, this deviation from the canonical instruction set is kept.
func (c *CPU) opStoreRegs() error {
	for index, value := range c.v {
		if err := c.WriteByte(c.i+uint16(index), value); err != nil {
			return fmt.Errorf("storing register V%X: %w", index, err)
		}
	}
	c.pc += 2
	return nil
}

// opLoadRegs reads memory at I..I+15 into all 16 registers, the same
// full register file deviation as opStoreRegs.
func (c *CPU) opLoadRegs() error {
	for index := range c.v {
		value, err := c.ReadByte(c.i + uint16(index))
		if err != nil {
			return fmt.Errorf("loading register V%X: %w", index, err)
		}
		c.v[index] = value
	}
	c.pc += 2
	return nil
}
