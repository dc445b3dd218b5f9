package chip8

import "fmt"

// UnknownOpcodeError is returned by Decode when no instruction pattern
// matches the opcode.
type UnknownOpcodeError struct {
	Opcode uint16
}

func (e UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode %04X", e.Opcode)
}

// UnsupportedInstructionError is returned when executing an instruction
// the machine does not implement, such as native machine code calls.
type UnsupportedInstructionError struct {
	Instruction Instruction
}

func (e UnsupportedInstructionError) Error() string {
	return fmt.Sprintf("unsupported instruction %s", e.Instruction)
}

// InvalidKeyError is returned when a key index is outside the
// hexadecimal keypad range 0x0-0xF.
type InvalidKeyError struct {
	Key uint8
}

func (e InvalidKeyError) Error() string {
	return fmt.Sprintf("invalid key %X", e.Key)
}

// EmptyStackError is returned when a subroutine return executes with no
// return address on the call stack.
type EmptyStackError struct{}

func (e EmptyStackError) Error() string {
	return "subroutine return with an empty call stack"
}

// ROMTooLargeError is returned by Load when the ROM image does not fit
// into RAM between the program start address and the end of memory.
type ROMTooLargeError struct {
	Size int
}

func (e ROMTooLargeError) Error() string {
	return fmt.Sprintf("ROM of %d bytes exceeds the %d bytes of program memory", e.Size, RAMSize-ProgramStart)
}
