package chip8

// operation is the closed enumeration of executable instruction kinds.
// opUnknown is the explicit no-match arm, it is never treated as a
// default no-op.
type operation uint8

const (
	opUnknown operation = iota

	opCls       // 00E0 cls
	opRet       // 00EE ret
	opJp        // 1nnn jp addr
	opCall      // 2nnn call addr
	opSeByte    // 3xkk se Vx, byte
	opSneByte   // 4xkk sne Vx, byte
	opSeReg     // 5xy0 se Vx, Vy
	opLdByte    // 6xkk ld Vx, byte
	opAddByte   // 7xkk add Vx, byte
	opLdReg     // 8xy0 ld Vx, Vy
	opOrReg     // 8xy1 or Vx, Vy
	opLdI       // Annn ld I, addr
	opDrw       // Dxyn drw Vx, Vy, nibble
	opBCD       // Fx33 ld B, Vx
	opStoreRegs // Fx55 ld [I], Vx
	opLoadRegs  // Fx65 ld Vx, [I]
)

// instruction is a decoded 16 bit instruction word with all operand
// fields extracted. Register indexes x and y are 4 bit fields and
// therefore always valid register indexes.
type instruction struct {
	word uint16 // raw instruction word
	op   operation

	x   byte   // bits 8-11, register index
	y   byte   // bits 4-7, register index
	n   byte   // bits 0-3, sub-opcode / sprite height nibble
	kk  byte   // bits 0-7, byte immediate
	nnn uint16 // bits 0-11, address immediate
}

// decode extracts the operand fields from an instruction word and
// selects the operation. Dispatch is two-level: first on the high
// nibble, then for the ambiguous top nibbles 0x0, 0x5, 0x8 and 0xF on
// the sub-opcode fields.
func decode(word uint16) instruction {
	ins := instruction{
		word: word,
		x:    byte(word >> 8 & 0x0F),
		y:    byte(word >> 4 & 0x0F),
		n:    byte(word & 0x0F),
		kk:   byte(word),
		nnn:  word & 0x0FFF,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			ins.op = opCls
		case 0x00EE:
			ins.op = opRet
		}
	case 0x1:
		ins.op = opJp
	case 0x2:
		ins.op = opCall
	case 0x3:
		ins.op = opSeByte
	case 0x4:
		ins.op = opSneByte
	case 0x5:
		if ins.n == 0x0 {
			ins.op = opSeReg
		}
	case 0x6:
		ins.op = opLdByte
	case 0x7:
		ins.op = opAddByte
	case 0x8:
		switch ins.n {
		case 0x0:
			ins.op = opLdReg
		case 0x1:
			ins.op = opOrReg
		}
	case 0xA:
		ins.op = opLdI
	case 0xD:
		ins.op = opDrw
	case 0xF:
		switch ins.kk {
		case 0x33:
			ins.op = opBCD
		case 0x55:
			ins.op = opStoreRegs
		case 0x65:
			ins.op = opLoadRegs
		}
	}
	return ins
}
