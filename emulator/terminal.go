package emulator

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/nenikitov/chip-8-emulator/chip8"
)

// releaseFrames is how many frames a terminal key stays pressed before a
// release is synthesized. Terminals only report key presses; holding a
// key keeps refreshing the countdown through typematic repeats.
const releaseFrames = 6

// char2Key maps the same keyboard block as the SDL front-end onto the
// hexadecimal keypad.
var char2Key = map[byte]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// Terminal runs the machine in the controlling terminal, drawing the
// framebuffer with half block glyphs. Escape or ctrl-c quits, p toggles
// pause.
type Terminal struct {
	chip    *chip8.Chip8
	ips     int
	paused  bool
	pending [chip8.KeyCount]int
}

// NewTerminal returns a terminal front-end for the machine.
func NewTerminal(chip *chip8.Chip8, ips int) *Terminal {
	return &Terminal{
		chip: chip,
		ips:  ips,
	}
}

// Run switches the terminal to raw mode and drives the machine with two
// independent clocks, one at the instruction rate and one at 60hz for
// timers, key releases and redraws. A single loop services both so the
// core stays owned by one goroutine. Returns once the user quits or the
// machine faults.
func (e *Terminal) Run() error {
	fd := int(os.Stdin.Fd())
	previous, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, previous)

	// hide the cursor and clear the screen, restore on exit
	os.Stdout.WriteString("\x1b[?25l\x1b[2J")
	defer os.Stdout.WriteString("\x1b[?25h\x1b[2J\x1b[H")

	input := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				close(input)
				return
			}
			input <- buf[0]
		}
	}()

	instructions := time.NewTicker(time.Second / time.Duration(e.ips))
	defer instructions.Stop()
	frames := time.NewTicker(time.Second / FrameRate)
	defer frames.Stop()

	for {
		select {
		case b, ok := <-input:
			if !ok {
				return nil
			}
			if quit := e.handleKey(b); quit {
				return nil
			}

		case <-instructions.C:
			if e.paused {
				continue
			}
			if err := e.chip.StepInstruction(); err != nil {
				return fmt.Errorf("machine fault: %w", err)
			}

		case <-frames.C:
			if !e.paused {
				e.chip.StepTimer()
				e.releaseElapsedKeys()
			}
			e.draw()
		}
	}
}

// handleKey reacts to one input byte and reports whether to quit.
func (e *Terminal) handleKey(b byte) bool {
	switch b {
	case 0x1b, 0x03: // escape, ctrl-c
		return true
	case 'p':
		e.paused = !e.paused
		return false
	}

	if key, ok := char2Key[b]; ok {
		e.chip.PressKey(key)
		e.pending[key] = releaseFrames
	}

	return false
}

// releaseElapsedKeys counts pressed keys down and releases the ones
// whose countdown ran out. The release is what resolves a blocking
// key wait in the core.
func (e *Terminal) releaseElapsedKeys() {
	for key := range e.pending {
		if e.pending[key] == 0 {
			continue
		}
		e.pending[key]--
		if e.pending[key] == 0 {
			e.chip.ReleaseKey(uint8(key))
		}
	}
}

func (e *Terminal) draw() {
	os.Stdout.WriteString(renderFrame(&e.chip.Memory().VRAM, e.paused))
}

// renderFrame converts the framebuffer into an ANSI frame, packing two
// pixel rows into each text row with half block glyphs.
func renderFrame(vram *[chip8.DisplayHeight][chip8.DisplayWidth]bool, paused bool) string {
	var b strings.Builder
	b.WriteString("\x1b[H")

	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := 0; x < chip8.DisplayWidth; x++ {
			top, bottom := vram[y][x], vram[y+1][x]
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteString("\r\n")
	}

	if paused {
		b.WriteString("-- paused --")
	} else {
		b.WriteString("\x1b[K")
	}
	b.WriteString("\r\n")

	return b.String()
}
