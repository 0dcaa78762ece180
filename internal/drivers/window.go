package drivers

import (
	"log"
	"unicode"

	"github.com/bchadwic/chip8vm/internal/display"
	"github.com/gonutz/prototype/draw"
)

// window is the part of draw.Window the driver uses
type window interface {
	IsKeyDown(key draw.Key) bool
	WasKeyPressed(key draw.Key) bool
	FillRect(x, y, width, height int, color draw.Color)
	DrawRect(x, y, width, height int, color draw.Color)
	Characters() string
	Close()
}

var _ window = draw.Window(nil)

var drawKeys = map[rune]draw.Key{
	'0': draw.Key0, '1': draw.Key1, '2': draw.Key2, '3': draw.Key3, '4': draw.Key4,
	'5': draw.Key5, '6': draw.Key6, '7': draw.Key7, '8': draw.Key8, '9': draw.Key9,
	'a': draw.KeyA, 'b': draw.KeyB, 'c': draw.KeyC, 'd': draw.KeyD, 'e': draw.KeyE,
	'f': draw.KeyF, 'g': draw.KeyG, 'h': draw.KeyH, 'i': draw.KeyI, 'j': draw.KeyJ,
	'k': draw.KeyK, 'l': draw.KeyL, 'm': draw.KeyM, 'n': draw.KeyN, 'o': draw.KeyO,
	'p': draw.KeyP, 'q': draw.KeyQ, 'r': draw.KeyR, 's': draw.KeyS, 't': draw.KeyT,
	'u': draw.KeyU, 'v': draw.KeyV, 'w': draw.KeyW, 'x': draw.KeyX, 'y': draw.KeyY,
	'z': draw.KeyZ,
}

// StartWindow opens the window and runs the machine until the window
// is closed or the machine faults. draw paces the frames at 60Hz.
func (driver *driverContext) StartWindow() error {
	for r := range driver.keypad.Layout() {
		if _, ok := drawKeys[unicode.ToLower(r)]; !ok {
			log.Printf("key %q is read from typed characters", r)
		}
	}

	err := draw.RunWindow(
		"CHIP-8",
		display.COLS*display.SCALE,
		// one extra row for the buzzer strip
		(display.ROWS+1)*display.SCALE,
		func(w draw.Window) {
			driver.update(w)
		},
	)
	if err != nil {
		return err
	}
	return driver.err
}

func (driver *driverContext) update(w window) {
	if driver.err != nil {
		return
	}
	if w.WasKeyPressed(draw.KeyEscape) {
		w.Close()
		return
	}
	if w.WasKeyPressed(draw.KeyTab) {
		if err := driver.switchRom(); err != nil {
			driver.fail(w, err)
			return
		}
	}

	driver.poll(w)
	if err := driver.Frame(); err != nil {
		driver.fail(w, err)
		return
	}
	driver.render(w)
}

func (driver *driverContext) fail(w window, err error) {
	driver.err = err
	w.Close()
}

// poll copies the window key state onto the machine. Keys without a
// draw binding only arrive as typed characters, so they are held for a
// few frames like terminal key presses.
func (driver *driverContext) poll(w window) {
	for _, r := range w.Characters() {
		if _, ok := drawKeys[unicode.ToLower(r)]; !ok {
			driver.keypad.Press(r)
		}
	}
	driver.keypad.Apply(driver.machine)

	for r, k := range driver.keypad.Layout() {
		key, ok := drawKeys[unicode.ToLower(r)]
		if !ok {
			continue
		}
		driver.machine.SetKey(k, w.IsKeyDown(key))
	}
}

func (driver *driverContext) render(w window) {
	frame := driver.machine.Framebuffer()
	driver.drawPixels(w, &frame)
	if driver.speaker.IsActive() {
		w.FillRect(0, display.ROWS*display.SCALE, display.COLS*display.SCALE, display.SCALE, driver.color)
	}
}

func (driver *driverContext) drawPixels(w window, d display.Display) {
	for _, pixel := range d.Lit() {
		x, y := pixel.Col*display.SCALE, pixel.Row*display.SCALE
		if driver.fill {
			w.FillRect(x, y, display.SCALE, display.SCALE, driver.color)
		} else {
			w.DrawRect(x, y, display.SCALE, display.SCALE, driver.color)
		}
	}
}
