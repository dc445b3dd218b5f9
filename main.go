package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/retroenv/retrogolib/log"

	"github.com/nenikitov/chip-8-emulator/chip8"
	"github.com/nenikitov/chip-8-emulator/emulator"
)

var (
	filename = flag.String("f", "", "path to the ROM image to run")
	ui       = flag.String("ui", "sdl", "front-end to use: sdl or term")
	ips      = flag.Int("ips", 700, "instruction rate in instructions per second")
	debug    = flag.Bool("debug", false, "enable debug logging")
	quiet    = flag.Bool("q", false, "only log errors")

	shiftIgnoresVy = flag.Bool("quirk-shift-ignores-vy", true,
		"shift instructions operate on Vx in place instead of copying Vy first")
	jumpReadsFromVx = flag.Bool("quirk-jump-reads-from-vx", false,
		"the offset jump adds Vx instead of V0 to the address")
	addToIndexStoresOverflow = flag.Bool("quirk-index-overflow", true,
		"adding to the index register sets VF when it leaves the address range")
	storeLoadModifiesI = flag.Bool("quirk-store-load-modifies-i", false,
		"register dump and load advance the index register")
)

func init() {
	// SDL requires its calls to happen on the main OS thread
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	logger := createLogger(*debug, *quiet)

	if *filename == "" {
		flag.Usage()
		logger.Fatal("No ROM file given")
	}

	rom, err := os.ReadFile(*filename)
	if err != nil {
		logger.Fatal("Reading ROM failed", log.Err(err))
	}

	chip := chip8.New(chip8.Config{
		ShiftIgnoresVy:           *shiftIgnoresVy,
		JumpReadsFromVx:          *jumpReadsFromVx,
		AddToIndexStoresOverflow: *addToIndexStoresOverflow,
		StoreLoadModifiesI:       *storeLoadModifiesI,
	})
	if err := chip.Load(rom); err != nil {
		logger.Fatal("Loading ROM failed", log.Err(err))
	}
	logger.Debug("Loaded ROM",
		log.String("file", *filename),
		log.Int("bytes", len(rom)),
	)

	if err := run(chip, rom, logger); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(chip *chip8.Chip8, rom []byte, logger *log.Logger) error {
	switch *ui {
	case "sdl":
		front, err := emulator.NewSDL(chip, rom, *ips, logger)
		if err != nil {
			return err
		}
		return front.Run()

	case "term":
		return emulator.NewTerminal(chip, *ips).Run()

	default:
		flag.Usage()
		logger.Fatal("Unknown front-end", log.String("ui", *ui))
		return nil
	}
}

func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
