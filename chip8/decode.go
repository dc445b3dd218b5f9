package chip8

// Decode maps a raw instruction word to a member of the instruction set.
// Bit patterns outside the 34 recognized families return an
// UnknownOpcodeError, never a guess.
func Decode(word uint16) (Instruction, error) {
	o := splitOpcode(word)

	switch {
	case o.i == 0x0 && o.x == 0x0 && o.y == 0xE && o.n == 0x0:
		return Instruction{Kind: DisplayClear}, nil
	case o.i == 0x0 && o.x == 0x0 && o.y == 0xE && o.n == 0xE:
		return Instruction{Kind: SubroutineReturn}, nil
	case o.i == 0x0:
		return Instruction{Kind: System, NNN: o.nnn}, nil
	case o.i == 0x1:
		return Instruction{Kind: Jump, NNN: o.nnn}, nil
	case o.i == 0x2:
		return Instruction{Kind: SubroutineCall, NNN: o.nnn}, nil
	case o.i == 0x3:
		return Instruction{Kind: SkipIfVxEqualsValue, X: o.x, NN: o.nn}, nil
	case o.i == 0x4:
		return Instruction{Kind: SkipIfVxNotEqualsValue, X: o.x, NN: o.nn}, nil
	case o.i == 0x5 && o.n == 0x0:
		return Instruction{Kind: SkipIfVxEqualsVy, X: o.x, Y: o.y}, nil
	case o.i == 0x6:
		return Instruction{Kind: SetRegisterWithValue, X: o.x, NN: o.nn}, nil
	case o.i == 0x7:
		return Instruction{Kind: AddRegisterWithValue, X: o.x, NN: o.nn}, nil
	case o.i == 0x8 && o.n == 0x0:
		return Instruction{Kind: SetVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x1:
		return Instruction{Kind: OrVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x2:
		return Instruction{Kind: AndVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x3:
		return Instruction{Kind: XorVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x4:
		return Instruction{Kind: AddVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x5:
		return Instruction{Kind: SubtractVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x6:
		return Instruction{Kind: Shift1RightVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0x7:
		return Instruction{Kind: SubtractVyWithVx, X: o.x, Y: o.y}, nil
	case o.i == 0x8 && o.n == 0xE:
		return Instruction{Kind: Shift1LeftVxWithVy, X: o.x, Y: o.y}, nil
	case o.i == 0x9 && o.n == 0x0:
		return Instruction{Kind: SkipIfVxNotEqualsVy, X: o.x, Y: o.y}, nil
	case o.i == 0xA:
		return Instruction{Kind: SetIndexWithValue, NNN: o.nnn}, nil
	case o.i == 0xB:
		return Instruction{Kind: JumpWithOffset, X: o.x, NNN: o.nnn}, nil
	case o.i == 0xC:
		return Instruction{Kind: Random, X: o.x, NN: o.nn}, nil
	case o.i == 0xD:
		return Instruction{Kind: DisplayDraw, X: o.x, Y: o.y, N: o.n}, nil
	case o.i == 0xE && o.nn == 0x9E:
		return Instruction{Kind: SkipIfKeyPressed, X: o.x}, nil
	case o.i == 0xE && o.nn == 0xA1:
		return Instruction{Kind: SkipIfKeyNotPressed, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x07:
		return Instruction{Kind: SetVxWithDelayTimer, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x0A:
		return Instruction{Kind: WaitForKey, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x15:
		return Instruction{Kind: SetDelayTimerWithVx, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x18:
		return Instruction{Kind: SetSoundTimerWithVx, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x1E:
		return Instruction{Kind: AddIndexWithVx, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x29:
		return Instruction{Kind: SetIndexWithCharacter, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x33:
		return Instruction{Kind: StoreBCD, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x55:
		return Instruction{Kind: StoreRegisters, X: o.x}, nil
	case o.i == 0xF && o.nn == 0x65:
		return Instruction{Kind: LoadRegisters, X: o.x}, nil
	default:
		return Instruction{}, UnknownOpcodeError{Opcode: word}
	}
}
