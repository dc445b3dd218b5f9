package chip8

import "math/rand"

// setFlag writes a carry, borrow or collision flag into VF.
func setFlag(m *Memory, b bool) {
	if b {
		m.V[FlagRegister] = 1
	} else {
		m.V[FlagRegister] = 0
	}
}

// execute applies one decoded instruction to machine memory. Side effects
// are confined to the memory; the returned state tells the controller
// whether the machine should block waiting for a key release.
func execute(in Instruction, m *Memory, cfg Config, rng *rand.Rand) (state, error) {
	switch in.Kind {
	case System:
		return ready, UnsupportedInstructionError{Instruction: in}

	case DisplayClear:
		m.clearVRAM()

	case SubroutineReturn:
		if len(m.Stack) == 0 {
			return ready, EmptyStackError{}
		}
		m.PC = m.Stack[len(m.Stack)-1]
		m.Stack = m.Stack[:len(m.Stack)-1]

	case Jump:
		m.PC = in.NNN

	case SubroutineCall:
		m.Stack = append(m.Stack, m.PC)
		m.PC = in.NNN

	case SkipIfVxEqualsValue:
		if m.V[in.X] == in.NN {
			m.incrementPC()
		}

	case SkipIfVxNotEqualsValue:
		if m.V[in.X] != in.NN {
			m.incrementPC()
		}

	case SkipIfVxEqualsVy:
		if m.V[in.X] == m.V[in.Y] {
			m.incrementPC()
		}

	case SkipIfVxNotEqualsVy:
		if m.V[in.X] != m.V[in.Y] {
			m.incrementPC()
		}

	case SetRegisterWithValue:
		m.V[in.X] = in.NN

	case AddRegisterWithValue:
		m.V[in.X] += in.NN

	case SetVxWithVy:
		m.V[in.X] = m.V[in.Y]

	case OrVxWithVy:
		m.V[in.X] |= m.V[in.Y]

	case AndVxWithVy:
		m.V[in.X] &= m.V[in.Y]

	case XorVxWithVy:
		m.V[in.X] ^= m.V[in.Y]

	case AddVxWithVy:
		carried := uint16(m.V[in.X])+uint16(m.V[in.Y]) > 0xFF
		m.V[in.X] += m.V[in.Y]
		setFlag(m, carried)

	case SubtractVxWithVy:
		borrowed := m.V[in.X] < m.V[in.Y]
		m.V[in.X] -= m.V[in.Y]
		setFlag(m, !borrowed)

	case SubtractVyWithVx:
		borrowed := m.V[in.Y] < m.V[in.X]
		m.V[in.X] = m.V[in.Y] - m.V[in.X]
		setFlag(m, !borrowed)

	case Shift1RightVxWithVy:
		if !cfg.ShiftIgnoresVy {
			m.V[in.X] = m.V[in.Y]
		}
		out := m.V[in.X] & 0x01
		m.V[in.X] >>= 1
		setFlag(m, out == 1)

	case Shift1LeftVxWithVy:
		if !cfg.ShiftIgnoresVy {
			m.V[in.X] = m.V[in.Y]
		}
		out := m.V[in.X] >> 7
		m.V[in.X] <<= 1
		setFlag(m, out == 1)

	case SetIndexWithValue:
		m.I = in.NNN

	case JumpWithOffset:
		if cfg.JumpReadsFromVx {
			m.PC = in.NNN + uint16(m.V[in.X])
		} else {
			m.PC = in.NNN + uint16(m.V[0])
		}

	case Random:
		m.V[in.X] = uint8(rng.Uint32()) & in.NN

	case DisplayDraw:
		draw(in, m)

	case SkipIfKeyPressed:
		key := m.V[in.X]
		if key >= KeyCount {
			return ready, InvalidKeyError{Key: key}
		}
		if m.Keys[key] {
			m.incrementPC()
		}

	case SkipIfKeyNotPressed:
		key := m.V[in.X]
		if key >= KeyCount {
			return ready, InvalidKeyError{Key: key}
		}
		if !m.Keys[key] {
			m.incrementPC()
		}

	case SetVxWithDelayTimer:
		m.V[in.X] = m.DT

	case WaitForKey:
		return state{waiting: true, vx: in.X}, nil

	case SetDelayTimerWithVx:
		m.DT = m.V[in.X]

	case SetSoundTimerWithVx:
		m.ST = m.V[in.X]

	case AddIndexWithVx:
		m.I += uint16(m.V[in.X])
		if cfg.AddToIndexStoresOverflow && m.I >= RAMSize {
			setFlag(m, true)
		}

	case SetIndexWithCharacter:
		m.I = FontStart + uint16(m.V[in.X])*FontCharacterSize

	case StoreBCD:
		m.RAM[m.I] = m.V[in.X] / 100
		m.RAM[m.I+1] = m.V[in.X] % 100 / 10
		m.RAM[m.I+2] = m.V[in.X] % 10

	case StoreRegisters:
		copy(m.RAM[m.I:], m.V[:in.X+1])
		if cfg.StoreLoadModifiesI {
			m.I += uint16(in.X) + 1
		}

	case LoadRegisters:
		copy(m.V[:in.X+1], m.RAM[m.I:])
		if cfg.StoreLoadModifiesI {
			m.I += uint16(in.X) + 1
		}

	default:
		return ready, UnsupportedInstructionError{Instruction: in}
	}

	return ready, nil
}

// draw XORs an 8 pixel wide sprite into the framebuffer. The start
// position wraps around the screen, the drawing itself clips at the
// right and bottom edges. VF reports whether any pixel was turned off.
func draw(in Instruction, m *Memory) {
	x := m.V[in.X] % DisplayWidth
	y := m.V[in.Y] % DisplayHeight
	setFlag(m, false)

	for r := uint8(0); r < in.N; r++ {
		row := m.RAM[m.I+uint16(r)]
		py := y + r
		if py >= DisplayHeight {
			break
		}
		for p := uint8(0); p < 8; p++ {
			if row&(1<<(7-p)) == 0 {
				continue
			}
			px := x + p
			if px >= DisplayWidth {
				break
			}
			m.VRAM[py][px] = !m.VRAM[py][px]
			if !m.VRAM[py][px] {
				m.V[FlagRegister] = 1
			}
		}
	}
}
