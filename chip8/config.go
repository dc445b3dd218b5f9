package chip8

// Config selects between historically divergent interpreter behaviors.
// Immutable once the machine is constructed.
type Config struct {
	// ShiftIgnoresVy makes 8XY6/8XYE shift Vx in place instead of first
	// copying Vy into Vx like the original interpreter did.
	ShiftIgnoresVy bool
	// JumpReadsFromVx makes BNNN add the Vx encoded in the opcode to the
	// address instead of V0.
	JumpReadsFromVx bool
	// AddToIndexStoresOverflow makes FX1E set VF when the index register
	// leaves the 12-bit address range.
	AddToIndexStoresOverflow bool
	// StoreLoadModifiesI makes FX55/FX65 advance the index register past
	// the transferred block like the original interpreter did.
	StoreLoadModifiesI bool
}

// DefaultConfig returns the toggles most modern ROMs expect.
func DefaultConfig() Config {
	return Config{
		ShiftIgnoresVy:           true,
		JumpReadsFromVx:          false,
		AddToIndexStoresOverflow: true,
		StoreLoadModifiesI:       false,
	}
}
