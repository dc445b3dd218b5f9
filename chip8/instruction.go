package chip8

import "fmt"

// Kind identifies one member of the closed instruction set.
type Kind uint8

const (
	// System calls a native machine code routine (0NNN). Unsupported.
	System Kind = iota
	// DisplayClear turns off every pixel (00E0).
	DisplayClear
	// SubroutineReturn pops the call stack into the program counter (00EE).
	SubroutineReturn
	// Jump sets the program counter to an address (1NNN).
	Jump
	// SubroutineCall pushes the program counter and jumps (2NNN).
	SubroutineCall
	// SkipIfVxEqualsValue skips the next instruction if Vx == NN (3XNN).
	SkipIfVxEqualsValue
	// SkipIfVxNotEqualsValue skips the next instruction if Vx != NN (4XNN).
	SkipIfVxNotEqualsValue
	// SkipIfVxEqualsVy skips the next instruction if Vx == Vy (5XY0).
	SkipIfVxEqualsVy
	// SetRegisterWithValue loads NN into Vx (6XNN).
	SetRegisterWithValue
	// AddRegisterWithValue adds NN to Vx without touching the flag (7XNN).
	AddRegisterWithValue
	// SetVxWithVy copies Vy into Vx (8XY0).
	SetVxWithVy
	// OrVxWithVy sets Vx to Vx | Vy (8XY1).
	OrVxWithVy
	// AndVxWithVy sets Vx to Vx & Vy (8XY2).
	AndVxWithVy
	// XorVxWithVy sets Vx to Vx ^ Vy (8XY3).
	XorVxWithVy
	// AddVxWithVy adds Vy to Vx, VF holds the carry (8XY4).
	AddVxWithVy
	// SubtractVxWithVy sets Vx to Vx - Vy, VF holds "no borrow" (8XY5).
	SubtractVxWithVy
	// Shift1RightVxWithVy shifts right by one, VF holds the shifted out
	// bit; the source operand depends on Config.ShiftIgnoresVy (8XY6).
	Shift1RightVxWithVy
	// SubtractVyWithVx sets Vx to Vy - Vx, VF holds "no borrow" (8XY7).
	SubtractVyWithVx
	// Shift1LeftVxWithVy shifts left by one, VF holds the shifted out
	// bit; the source operand depends on Config.ShiftIgnoresVy (8XYE).
	Shift1LeftVxWithVy
	// SkipIfVxNotEqualsVy skips the next instruction if Vx != Vy (9XY0).
	SkipIfVxNotEqualsVy
	// SetIndexWithValue loads NNN into the index register (ANNN).
	SetIndexWithValue
	// JumpWithOffset jumps to NNN plus a register; the register depends
	// on Config.JumpReadsFromVx (BNNN).
	JumpWithOffset
	// Random sets Vx to a random byte masked with NN (CXNN).
	Random
	// DisplayDraw XORs an N-row sprite at (Vx, Vy), VF holds the
	// collision flag (DXYN).
	DisplayDraw
	// SkipIfKeyPressed skips the next instruction if the key Vx is
	// pressed (EX9E).
	SkipIfKeyPressed
	// SkipIfKeyNotPressed skips the next instruction if the key Vx is
	// not pressed (EXA1).
	SkipIfKeyNotPressed
	// SetVxWithDelayTimer reads the delay timer into Vx (FX07).
	SetVxWithDelayTimer
	// WaitForKey blocks instruction stepping until a key is released,
	// storing the key in Vx (FX0A).
	WaitForKey
	// SetDelayTimerWithVx sets the delay timer to Vx (FX15).
	SetDelayTimerWithVx
	// SetSoundTimerWithVx sets the sound timer to Vx (FX18).
	SetSoundTimerWithVx
	// AddIndexWithVx adds Vx to the index register; overflow handling
	// depends on Config.AddToIndexStoresOverflow (FX1E).
	AddIndexWithVx
	// SetIndexWithCharacter points the index register at the font
	// sprite of the digit Vx (FX29).
	SetIndexWithCharacter
	// StoreBCD writes the decimal digits of Vx to RAM at the index
	// register (FX33).
	StoreBCD
	// StoreRegisters dumps V0..Vx to RAM at the index register; whether
	// the index advances depends on Config.StoreLoadModifiesI (FX55).
	StoreRegisters
	// LoadRegisters fills V0..Vx from RAM at the index register; whether
	// the index advances depends on Config.StoreLoadModifiesI (FX65).
	LoadRegisters
)

var kindNames = map[Kind]string{
	System:                 "System",
	DisplayClear:           "DisplayClear",
	SubroutineReturn:       "SubroutineReturn",
	Jump:                   "Jump",
	SubroutineCall:         "SubroutineCall",
	SkipIfVxEqualsValue:    "SkipIfVxEqualsValue",
	SkipIfVxNotEqualsValue: "SkipIfVxNotEqualsValue",
	SkipIfVxEqualsVy:       "SkipIfVxEqualsVy",
	SetRegisterWithValue:   "SetRegisterWithValue",
	AddRegisterWithValue:   "AddRegisterWithValue",
	SetVxWithVy:            "SetVxWithVy",
	OrVxWithVy:             "OrVxWithVy",
	AndVxWithVy:            "AndVxWithVy",
	XorVxWithVy:            "XorVxWithVy",
	AddVxWithVy:            "AddVxWithVy",
	SubtractVxWithVy:       "SubtractVxWithVy",
	Shift1RightVxWithVy:    "Shift1RightVxWithVy",
	SubtractVyWithVx:       "SubtractVyWithVx",
	Shift1LeftVxWithVy:     "Shift1LeftVxWithVy",
	SkipIfVxNotEqualsVy:    "SkipIfVxNotEqualsVy",
	SetIndexWithValue:      "SetIndexWithValue",
	JumpWithOffset:         "JumpWithOffset",
	Random:                 "Random",
	DisplayDraw:            "DisplayDraw",
	SkipIfKeyPressed:       "SkipIfKeyPressed",
	SkipIfKeyNotPressed:    "SkipIfKeyNotPressed",
	SetVxWithDelayTimer:    "SetVxWithDelayTimer",
	WaitForKey:             "WaitForKey",
	SetDelayTimerWithVx:    "SetDelayTimerWithVx",
	SetSoundTimerWithVx:    "SetSoundTimerWithVx",
	AddIndexWithVx:         "AddIndexWithVx",
	SetIndexWithCharacter:  "SetIndexWithCharacter",
	StoreBCD:               "StoreBCD",
	StoreRegisters:         "StoreRegisters",
	LoadRegisters:          "LoadRegisters",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Instruction is one decoded member of the instruction set. Only the
// fields its kind uses are populated by the decoder.
type Instruction struct {
	Kind Kind
	// X is a register index operand.
	X uint8
	// Y is a register index operand.
	Y uint8
	// N is a 4-bit immediate, the sprite height for DisplayDraw.
	N uint8
	// NN is an 8-bit immediate.
	NN uint8
	// NNN is a 12-bit address.
	NNN uint16
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s{X:%X Y:%X N:%X NN:%02X NNN:%03X}", in.Kind, in.X, in.Y, in.N, in.NN, in.NNN)
}
