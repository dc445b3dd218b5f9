package chip8

// opcode is a raw 16-bit instruction word split into its named fields.
type opcode struct {
	// i is the first nibble, selecting the instruction family.
	i uint8
	// x is the second nibble, usually a register index.
	x uint8
	// y is the third nibble, usually a register index.
	y uint8
	// n is the fourth nibble.
	n uint8
	// nn is the low byte.
	nn uint8
	// nnn is the low 12-bit word, usually an address.
	nnn uint16
}

// splitOpcode decomposes an instruction word into its fields.
func splitOpcode(word uint16) opcode {
	return opcode{
		i:   uint8(word >> 12),
		x:   uint8(word >> 8 & 0xF),
		y:   uint8(word >> 4 & 0xF),
		n:   uint8(word & 0xF),
		nn:  uint8(word & 0xFF),
		nnn: word & 0xFFF,
	}
}
