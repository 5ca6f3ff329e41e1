package chip8

// mockDisplay records the display requests forwarded by the core.
type mockDisplay struct {
	clearCalls int
	draws      []drawCall

	collision bool
	err       error
}

type drawCall struct {
	addr         uint16
	x, y, height byte
}

func (m *mockDisplay) Clear() error {
	m.clearCalls++
	return m.err
}

func (m *mockDisplay) Draw(addr uint16, x, y, height byte) (bool, error) {
	m.draws = append(m.draws, drawCall{addr: addr, x: x, y: y, height: height})
	return m.collision, m.err
}

// mockTimers is a plain record of the delay and sound timer registers.
type mockTimers struct {
	delay byte
	sound byte
}

func (m *mockTimers) DelayTimer() byte         { return m.delay }
func (m *mockTimers) SetDelayTimer(value byte) { m.delay = value }
func (m *mockTimers) SoundTimer() byte         { return m.sound }
func (m *mockTimers) SetSoundTimer(value byte) { m.sound = value }
