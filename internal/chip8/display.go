package chip8

// Display receives framebuffer requests from the core. The core does
// not render anything itself, it forwards clear-screen and sprite-draw
// requests to the attached collaborator.
type Display interface {
	// Clear clears the screen.
	Clear() error

	// Draw draws a sprite of 8 pixel width and the given height, read
	// from memory starting at addr, at screen position x,y. It reports
	// whether any set pixel was erased, the core writes this collision
	// flag into VF.
	Draw(addr uint16, x, y, height byte) (collision bool, err error)
}

// Timers provides access to the delay and sound timer registers, both
// decremented at 60Hz by the collaborator that owns the real-time
// clock. No instruction in the currently supported set reads or writes
// them.
type Timers interface {
	DelayTimer() byte
	SetDelayTimer(value byte)
	SoundTimer() byte
	SetSoundTimer(value byte)
}
