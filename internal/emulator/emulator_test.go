package emulator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestRun(t *testing.T) {
	// ld V0, $05 / jp $200 - an endless loop, stopped by the cycle limit
	rom := []byte{0x60, 0x05, 0x12, 0x00}

	opts := options.Program{
		Input:       createTempRom(t, rom),
		BaseAddress: chip8.ProgramStart,
		CycleLimit:  20,
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.NoError(t, err)
}

func TestRunUnknownInstruction(t *testing.T) {
	// ld V0, $05 / sne V0, V1 - the second instruction is not part of
	// the supported set and halts execution
	rom := []byte{0x60, 0x05, 0x90, 0x10}

	opts := options.Program{
		Input:       createTempRom(t, rom),
		BaseAddress: chip8.ProgramStart,
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts)

	var unknownErr chip8.UnknownInstructionError
	assert.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, uint16(0x9010), unknownErr.Opcode)
	assert.Equal(t, uint16(0x202), unknownErr.PC)
}

func TestRunMissingFile(t *testing.T) {
	opts := options.Program{
		Input: filepath.Join(t.TempDir(), "missing.ch8"),
	}

	err := Run(context.Background(), log.NewTestLogger(t), opts)
	assert.ErrorContains(t, err, "loading rom")
}

func TestRunCancellation(t *testing.T) {
	// jp $200 - an endless loop, stopped by context cancellation
	rom := []byte{0x12, 0x00}

	opts := options.Program{
		Input:       createTempRom(t, rom),
		BaseAddress: chip8.ProgramStart,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, log.NewTestLogger(t), opts)
	assert.True(t, errors.Is(err, context.Canceled))
}

func createTempRom(t *testing.T, data []byte) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "test.ch8")
	assert.NoError(t, os.WriteFile(name, data, 0o644))
	return name
}
