// Package emulator wires the ROM loader and the interpreter core
// together and drives the run loop.
package emulator

import (
	"context"
	"fmt"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/loader"
	"github.com/retroenv/chip8emu/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Run handles the complete emulation workflow: it loads the ROM file,
// sets up the interpreter core and executes it until the program hits
// an error, the cycle limit is reached or the context is cancelled.
// Errors propagate to the caller, which owns the terminal report.
func Run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	rom, err := loader.New().Load(opts)
	if err != nil {
		return fmt.Errorf("loading rom: %w", err)
	}

	cpu := chip8.New(logger)
	if opts.Trace || opts.Debug {
		cpu.EnableTrace()
	}

	if err := cpu.LoadProgram(rom, opts.BaseAddress); err != nil {
		return fmt.Errorf("loading program into memory: %w", err)
	}

	logger.Info("Executing Chip-8 ROM",
		log.String("file", opts.Input),
		log.String("base_address", fmt.Sprintf("0x%04X", opts.BaseAddress)),
	)

	if err := cpu.Run(ctx, opts.CycleLimit); err != nil {
		return err
	}

	logger.Info("Execution finished",
		log.Uint64("cycles", cpu.Cycles()),
	)
	return nil
}

// PrintBanner prints the application banner with version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8emu", log.String("version", buildinfo.Version(version, commit, date)))
}
