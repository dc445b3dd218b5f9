package chip8

const (
	// RAMSize is the total addressable memory of the machine.
	RAMSize = 4 * 1024
	// DisplayWidth is the framebuffer width in pixels.
	DisplayWidth = 64
	// DisplayHeight is the framebuffer height in pixels.
	DisplayHeight = 32
	// RegisterCount is the number of general purpose registers.
	RegisterCount = 16
	// KeyCount is the number of keys on the hexadecimal keypad.
	KeyCount = 16
	// ProgramStart is the address where programs are loaded.
	ProgramStart = 0x200
	// FontStart is the address where the font sprites are stored by convention.
	FontStart = 0x050
	// FontCharacterSize is the size in bytes of one font sprite.
	FontCharacterSize = 5
	// FlagRegister is the register overwritten with carry, borrow and
	// collision flags.
	FlagRegister = 0xF
)

// font contains the sprites for the hexadecimal digits 0-F, 5 bytes each.
var font = [16 * FontCharacterSize]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory holds the complete state of the machine. It exposes primitive
// mutators only; instruction semantics live in the execution engine.
type Memory struct {
	// RAM is the main memory. 0x000-0x1FF is reserved, the font lives at
	// 0x050-0x09F, programs start at 0x200.
	RAM [RAMSize]uint8
	// VRAM is the monochrome framebuffer, indexed [row][column].
	VRAM [DisplayHeight][DisplayWidth]bool
	// Stack holds the return addresses of active subroutines.
	Stack []uint16
	// PC is the address of the next instruction to fetch.
	PC uint16
	// DT is the delay timer, decremented toward zero at 60hz.
	DT uint8
	// ST is the sound timer, decremented toward zero at 60hz.
	ST uint8
	// I is the index register used for sprite and memory addressing.
	I uint16
	// V are the general purpose registers V0-VF.
	V [RegisterCount]uint8
	// Keys holds the pressed state of the hexadecimal keypad.
	Keys [KeyCount]bool
}

// NewMemory returns machine memory in its reset state.
func NewMemory() *Memory {
	m := &Memory{}
	m.reset()
	return m
}

// load resets all state and copies rom into RAM at the program start
// address. Fails without touching state if the image does not fit.
func (m *Memory) load(rom []byte) error {
	if len(rom) > RAMSize-ProgramStart {
		return ROMTooLargeError{Size: len(rom)}
	}
	m.reset()
	copy(m.RAM[ProgramStart:], rom)
	return nil
}

// incrementPC advances the program counter to the next instruction.
// It does not execute anything.
func (m *Memory) incrementPC() {
	m.PC += 2
}

// tickTimer decrements both timers by one, stopping at zero. Must be
// driven at a fixed 60hz rate by the caller.
func (m *Memory) tickTimer() {
	if m.DT > 0 {
		m.DT--
	}
	if m.ST > 0 {
		m.ST--
	}
}

// clearVRAM turns off every pixel of the framebuffer.
func (m *Memory) clearVRAM() {
	for y := range m.VRAM {
		for x := range m.VRAM[y] {
			m.VRAM[y][x] = false
		}
	}
}

// reset zeroes all state and installs the font into RAM.
func (m *Memory) reset() {
	for i := range m.RAM {
		m.RAM[i] = 0
	}
	copy(m.RAM[FontStart:], font[:])
	m.clearVRAM()
	m.Stack = nil
	for i := range m.V {
		m.V[i] = 0
	}
	for i := range m.Keys {
		m.Keys[i] = false
	}
	m.PC = ProgramStart
	m.DT = 0
	m.ST = 0
	m.I = 0
}
