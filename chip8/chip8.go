// Package chip8 implements the CHIP-8 virtual machine: 4KB of memory, a
// monochrome 64x32 framebuffer, 16 registers, a call stack, two countdown
// timers and the full base instruction set. The package is a pure library
// with no I/O; rendering, input and pacing are driven externally through
// the Chip8 facade.
package chip8

import (
	"math/rand"
	"time"
)

// TimerFrequency is the rate in hz at which StepTimer must be driven.
const TimerFrequency = 60

// state is the controller level execution state. The machine is either
// ready to step or blocked until a key release supplies a value for the
// register recorded by a WaitForKey instruction.
type state struct {
	waiting bool
	vx      uint8
}

var ready = state{}

// Chip8 is the emulator facade combining machine memory, the
// compatibility configuration and the blocking key wait state machine.
// It is exclusively owned by a single caller; no concurrent use.
type Chip8 struct {
	config Config
	memory *Memory
	state  state
	rng    *rand.Rand
}

// New returns a machine in its reset state using the given
// compatibility configuration.
func New(config Config) *Chip8 {
	return &Chip8{
		config: config,
		memory: NewMemory(),
		state:  ready,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Memory gives access to the machine state, e.g. for rendering the
// framebuffer.
func (c *Chip8) Memory() *Memory {
	return c.memory
}

// Load resets the machine and installs a ROM image at the program start
// address. Fails with a ROMTooLargeError if the image does not fit.
func (c *Chip8) Load(rom []byte) error {
	if err := c.memory.load(rom); err != nil {
		return err
	}
	c.state = ready
	return nil
}

// StepInstruction performs one fetch decode execute cycle. Should be
// called at around 500-1000hz. It is a no-op while the machine waits for
// a key release or while the delay timer is running. Decode and execute
// failures propagate to the caller, which decides whether to halt.
func (c *Chip8) StepInstruction() error {
	if c.state.waiting || c.memory.DT > 0 {
		return nil
	}

	word := uint16(c.memory.RAM[c.memory.PC])<<8 | uint16(c.memory.RAM[c.memory.PC+1])
	c.memory.incrementPC()

	in, err := Decode(word)
	if err != nil {
		return err
	}

	next, err := execute(in, c.memory, c.config, c.rng)
	if err != nil {
		return err
	}
	c.state = next

	return nil
}

// StepTimer decrements both timers toward zero. Must be called at a
// fixed rate of TimerFrequency hz.
func (c *Chip8) StepTimer() {
	c.memory.tickTimer()
}

// PressKey marks a keypad key as held. The key must be between 0x0 and
// 0xF inclusive.
func (c *Chip8) PressKey(key uint8) error {
	if key >= KeyCount {
		return InvalidKeyError{Key: key}
	}

	c.memory.Keys[key] = true

	return nil
}

// ReleaseKey marks a keypad key as released. If the machine is blocked
// on a WaitForKey instruction, the released key is written into the
// target register and stepping resumes. The key must be between 0x0 and
// 0xF inclusive.
func (c *Chip8) ReleaseKey(key uint8) error {
	if key >= KeyCount {
		return InvalidKeyError{Key: key}
	}

	c.memory.Keys[key] = false

	if c.state.waiting {
		c.memory.V[c.state.vx] = key
		c.state = ready
	}

	return nil
}
