// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string // ROM file to execute

	BaseAddress uint16 // memory address the ROM is loaded at
	CycleLimit  uint64 // maximum number of instructions to execute, 0 = unlimited

	Trace bool // trace each executed instruction
	Debug bool // enable debug logging
	Quiet bool // only log errors
}
