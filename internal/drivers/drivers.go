package drivers

import (
	"log"
	"strings"

	"github.com/bchadwic/chip8vm/internal/display"
	"github.com/bchadwic/chip8vm/internal/keypad"
	"github.com/bchadwic/chip8vm/internal/rom"
	"github.com/bchadwic/chip8vm/internal/speaker"
	"github.com/gonutz/prototype/draw"
)

const (
	DEFAULT_FRAME_RATE = 16 // milliseconds between frames, ~60Hz
	DEFAULT_CYCLES     = 10 // instructions per frame, ~600Hz
	HOLD_FRAMES        = 6  // frames a terminal key press stays down
)

// Machine is what the drivers need from the emulator
type Machine interface {
	Initialize()
	Load(rom []uint8) int
	Step() error
	Tick()
	Framebuffer() display.Frame
	SetKey(k uint8, pressed bool)
	SoundActive() bool
}

var colors = map[string]draw.Color{
	"white":  draw.White,
	"gray":   draw.Gray,
	"green":  draw.Green,
	"red":    draw.Red,
	"blue":   draw.Blue,
	"yellow": draw.Yellow,
	"cyan":   draw.Cyan,
	"purple": draw.Purple,
}

var qwerty = keypad.Qwerty

type driverContext struct {
	machine Machine
	speaker speaker.Speaker
	keypad  *keypad.Keypad
	roms    *rom.Catalog

	frameRate      int
	cyclesPerFrame int
	fill           bool
	color          draw.Color

	// set when the machine faults inside a window callback
	err error
}

func Create(machine Machine, sp speaker.Speaker, roms *rom.Catalog) *driverContext {
	if sp == nil {
		sp = speaker.Create()
	}
	return &driverContext{
		machine:        machine,
		speaker:        sp,
		roms:           roms,
		frameRate:      DEFAULT_FRAME_RATE,
		cyclesPerFrame: DEFAULT_CYCLES,
		fill:           true,
		color:          draw.Green,
		keypad:         keypad.Create(qwerty, HOLD_FRAMES),
	}
}

// KeypadSettings picks the keyboard layout by name, unknown names keep qwerty
func (driver *driverContext) KeypadSettings(keyboard string) *driverContext {
	layout, err := keypad.ParseLayout(keyboard)
	if err != nil {
		log.Printf("%s, using qwerty", err)
		layout = qwerty
	}
	driver.keypad = keypad.Create(layout, HOLD_FRAMES)
	return driver
}

// DisplaySettings sets the milliseconds between frames, whether pixels are
// filled or outlined and the pixel colour by name
func (driver *driverContext) DisplaySettings(frameRate int, fill bool, color string) *driverContext {
	if frameRate > 0 {
		driver.frameRate = frameRate
	}
	driver.fill = fill
	if c, ok := colors[strings.ToLower(color)]; ok {
		driver.color = c
	} else if color != "" {
		log.Printf("unknown color %q, using green", color)
	}
	return driver
}

// CycleSettings sets how many instructions run per frame
func (driver *driverContext) CycleSettings(cyclesPerFrame int) *driverContext {
	if cyclesPerFrame > 0 {
		driver.cyclesPerFrame = cyclesPerFrame
	}
	return driver
}

// Load resets the machine and loads a rom into it
func (driver *driverContext) Load(data []uint8) {
	driver.machine.Initialize()
	n := driver.machine.Load(data)
	if n < len(data) {
		log.Printf("rom truncated, loaded %d of %d bytes", n, len(data))
	}
	driver.keypad.Clear()
}

// Frame runs one frame worth of instructions, then ticks the timers once
func (driver *driverContext) Frame() error {
	for i := 0; i < driver.cyclesPerFrame; i++ {
		if err := driver.machine.Step(); err != nil {
			return err
		}
	}
	driver.machine.Tick()
	driver.speaker.Set(driver.machine.SoundActive())
	return nil
}

// switchRom moves on to the next rom in the catalog
func (driver *driverContext) switchRom() error {
	if driver.roms == nil || driver.roms.Len() < 2 {
		return nil
	}
	data, err := driver.roms.Next()
	if err != nil {
		return err
	}
	log.Printf("switching to %s", driver.roms.Name())
	driver.Load(data)
	return nil
}
