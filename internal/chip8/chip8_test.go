package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestNew(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	assert.NotNil(t, cpu)
	assert.Equal(t, uint16(ProgramStart), cpu.PC())
	assert.Equal(t, uint8(0), cpu.SP())
	assert.Equal(t, uint16(0), cpu.I())
	assert.Equal(t, uint64(0), cpu.Cycles())
}

func TestMemoryAccess(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	assert.NoError(t, cpu.WriteByte(0x200, 0xAB))
	value, err := cpu.ReadByte(0x200)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), value)

	// last valid address
	assert.NoError(t, cpu.WriteByte(MemorySize-1, 0x01))

	err = cpu.WriteByte(MemorySize, 0x01)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, err = cpu.ReadByte(MemorySize)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
}

func TestWordRoundTrip(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	// splitting into big-endian bytes and merging back is bit-exact
	// for every 16 bit value
	for value := 0; value <= 0xFFFF; value++ {
		assert.NoError(t, cpu.WriteWord(0x300, uint16(value)))
		got, err := cpu.ReadWord(0x300)
		assert.NoError(t, err)
		assert.Equal(t, uint16(value), got)
	}
}

func TestWordByteOrder(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	assert.NoError(t, cpu.WriteWord(0x300, 0x1234))

	high, err := cpu.ReadByte(0x300)
	assert.NoError(t, err)
	low, err := cpu.ReadByte(0x301)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), high)
	assert.Equal(t, byte(0x34), low)
}

func TestWordAccessBounds(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	// a word at the last byte address would cross the memory end
	err := cpu.WriteWord(MemorySize-1, 0x1234)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, err = cpu.ReadWord(MemorySize - 1)
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	assert.NoError(t, cpu.WriteWord(MemorySize-2, 0x1234))
}

func TestRegisterAccess(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	for index := byte(0); index < NumRegisters; index++ {
		assert.NoError(t, cpu.WriteRegister(index, index+1))
	}
	for index := byte(0); index < NumRegisters; index++ {
		value, err := cpu.ReadRegister(index)
		assert.NoError(t, err)
		assert.Equal(t, index+1, value)
	}

	err := cpu.WriteRegister(NumRegisters, 0)
	assert.True(t, errors.Is(err, ErrInvalidRegister))
	_, err = cpu.ReadRegister(NumRegisters)
	assert.True(t, errors.Is(err, ErrInvalidRegister))
}

func TestPointerAccessors(t *testing.T) {
	cpu := New(log.NewTestLogger(t))

	cpu.SetI(0x0FFF)
	assert.Equal(t, uint16(0x0FFF), cpu.I())

	cpu.SetPC(0x0456)
	assert.Equal(t, uint16(0x0456), cpu.PC())

	cpu.SetSP(0xFE)
	assert.Equal(t, uint8(0xFE), cpu.SP())
}

func TestLoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		base    uint16
		wantErr bool
	}{
		{"program at default base", []byte{0x60, 0x01, 0x12, 0x00}, ProgramStart, false},
		{"program at custom base", []byte{0x60, 0x01}, 0x400, false},
		{"program filling memory end", []byte{0x01, 0x02}, MemorySize - 2, false},
		{"program exceeding memory", []byte{0x01, 0x02, 0x03}, MemorySize - 2, true},
		{"maximum size program", make([]byte, MemorySize-ProgramStart), ProgramStart, false},
		{"oversized program", make([]byte, MemorySize-ProgramStart+1), ProgramStart, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cpu := New(log.NewTestLogger(t))
			err := cpu.LoadProgram(tt.data, tt.base)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfBounds))
				return
			}
			assert.NoError(t, err)
			for i, b := range tt.data {
				value, err := cpu.ReadByte(tt.base + uint16(i))
				assert.NoError(t, err)
				assert.Equal(t, b, value)
			}
		})
	}
}
