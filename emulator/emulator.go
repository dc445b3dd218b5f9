// Package emulator contains the front-ends driving the chip8 core: an
// SDL window and a terminal renderer. Both own the wall clock loops that
// pace instruction stepping and the 60hz timer tick.
package emulator

import (
	"fmt"

	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nenikitov/chip-8-emulator/chip8"
)

const (
	// DisplayScale is the size of one machine pixel in window pixels.
	DisplayScale = 10
	// FrameRate is the refresh and timer rate in frames per second.
	FrameRate = chip8.TimerFrequency

	windowW = chip8.DisplayWidth * DisplayScale
	windowH = chip8.DisplayHeight * DisplayScale
)

// scanCode2Key maps the left hand block of a QWERTY keyboard onto the
// hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var scanCode2Key = map[sdl.Scancode]uint8{
	sdl.SCANCODE_1: 0x1,
	sdl.SCANCODE_2: 0x2,
	sdl.SCANCODE_3: 0x3,
	sdl.SCANCODE_4: 0xC,
	sdl.SCANCODE_Q: 0x4,
	sdl.SCANCODE_W: 0x5,
	sdl.SCANCODE_E: 0x6,
	sdl.SCANCODE_R: 0xD,
	sdl.SCANCODE_A: 0x7,
	sdl.SCANCODE_S: 0x8,
	sdl.SCANCODE_D: 0x9,
	sdl.SCANCODE_F: 0xE,
	sdl.SCANCODE_Z: 0xA,
	sdl.SCANCODE_X: 0x0,
	sdl.SCANCODE_C: 0xB,
	sdl.SCANCODE_V: 0xF,
}

// SDL runs the machine inside an SDL window. Escape quits, space toggles
// pause, backspace reloads the ROM.
type SDL struct {
	chip     *chip8.Chip8
	rom      []byte
	ips      int
	logger   *log.Logger
	window   *sdl.Window
	renderer *sdl.Renderer
	running  bool
	paused   bool
	halted   bool
}

// NewSDL initializes the SDL video subsystem and opens the emulator
// window. Must be called from the main OS thread.
func NewSDL(chip *chip8.Chip8, rom []byte, ips int, logger *log.Logger) (*SDL, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow("CHIP-8", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowW, windowH, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &SDL{
		chip:     chip,
		rom:      rom,
		ips:      ips,
		logger:   logger,
		window:   window,
		renderer: renderer,
		running:  true,
	}, nil
}

// Run drives the machine until the window closes or the machine faults.
// Each vsynced frame executes one batch of instructions and one timer
// tick, so the configured instruction rate holds at 60 frames a second.
func (e *SDL) Run() error {
	defer e.close()

	stepsPerFrame := e.ips / FrameRate

	for e.running {
		if !e.paused && !e.halted {
			for i := 0; i < stepsPerFrame; i++ {
				if err := e.chip.StepInstruction(); err != nil {
					e.logger.Error("Machine fault", log.Err(err))
					e.halted = true
					break
				}
			}
			e.chip.StepTimer()
		}

		e.draw()
		e.pollEvents()
	}

	return nil
}

func (e *SDL) draw() {
	e.renderer.SetDrawColor(0, 0, 0, 255)
	e.renderer.Clear()

	e.renderer.SetDrawColor(0, 255, 0, 255)
	vram := &e.chip.Memory().VRAM
	for y := int32(0); y < chip8.DisplayHeight; y++ {
		for x := int32(0); x < chip8.DisplayWidth; x++ {
			if vram[y][x] {
				e.renderer.FillRect(&sdl.Rect{X: x * DisplayScale, Y: y * DisplayScale, W: DisplayScale, H: DisplayScale})
			}
		}
	}

	e.renderer.Present()
}

func (e *SDL) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			e.running = false

		case *sdl.KeyboardEvent:
			switch ev.Type {
			case sdl.KEYDOWN:
				if key, ok := scanCode2Key[ev.Keysym.Scancode]; ok {
					e.chip.PressKey(key)
					break
				}
				switch ev.Keysym.Scancode {
				case sdl.SCANCODE_ESCAPE:
					e.running = false
				case sdl.SCANCODE_SPACE:
					e.paused = !e.paused
				case sdl.SCANCODE_BACKSPACE:
					e.chip.Load(e.rom)
					e.halted = false
					e.logger.Info("Machine reset")
				}

			case sdl.KEYUP:
				if key, ok := scanCode2Key[ev.Keysym.Scancode]; ok {
					e.chip.ReleaseKey(key)
				}
			}
		}
	}
}

func (e *SDL) close() {
	e.renderer.Destroy()
	e.window.Destroy()
	sdl.Quit()
}
