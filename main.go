package main

import (
	"flag"
	"log"
	"os"

	"github.com/bchadwic/chip8vm/emulator"
	"github.com/bchadwic/chip8vm/internal/drivers"
	"github.com/bchadwic/chip8vm/internal/keypad"
	"github.com/bchadwic/chip8vm/internal/rom"
	"github.com/bchadwic/chip8vm/internal/speaker"
	"github.com/bchadwic/chip8vm/internal/statsview"
)

func main() {
	romPath := flag.String("rom", "ibm.ch8", "rom file, or a directory of roms to switch between with tab")
	mode := flag.String("mode", "window", "window or terminal")
	keyboard := flag.String("keyboard", "qwerty", "keyboard layout: qwerty, dvorak or colemak")
	color := flag.String("color", "green", "pixel color")
	fill := flag.Bool("fill", true, "fill pixels, otherwise outline them")
	frameRate := flag.Int("framerate", drivers.DEFAULT_FRAME_RATE, "milliseconds between frames in terminal mode")
	cycles := flag.Int("cycles", drivers.DEFAULT_CYCLES, "instructions executed per frame")
	trace := flag.Bool("trace", false, "log every executed instruction to stderr")
	stats := flag.String("statsview", "", "serve runtime statistics on this address, e.g. "+statsview.DefaultAddress)
	flag.Parse()

	if _, err := keypad.ParseLayout(*keyboard); err != nil {
		log.Fatal(err.Error())
	}

	roms, err := rom.Open(*romPath)
	if err != nil {
		log.Fatal(err.Error())
	}
	data, err := roms.Current()
	if err != nil {
		log.Fatal(err.Error())
	}

	if *stats != "" {
		statsview.Launch(*stats, os.Stderr)
	}

	var opts []emulator.Option
	if *trace {
		opts = append(opts, emulator.WithLogger(log.New(os.Stderr, "", log.Lmicroseconds)))
	}
	em := emulator.Create(opts...)
	sp := speaker.Create()

	driver := drivers.Create(
		em,
		sp,
		roms,
	).KeypadSettings(
		*keyboard,
	).DisplaySettings(
		*frameRate,
		*fill,
		*color,
	).CycleSettings(
		*cycles,
	)
	driver.Load(data)
	log.Printf("running %s", roms.Name())

	switch *mode {
	case "window":
		err = driver.StartWindow()
	case "terminal":
		err = driver.StartTerminal(os.Stdout)
	default:
		log.Fatalf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("%s stopped after %d instructions: %s", roms.Name(), em.Cycles(), err)
	}
	log.Printf("%d instructions, %d beeps", em.Cycles(), sp.Beeps())
}
