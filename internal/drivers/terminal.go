package drivers

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/bchadwic/chip8vm/internal/display"
	"github.com/bchadwic/chip8vm/internal/display/emit"
	"github.com/eiannone/keyboard"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// StartTerminal runs the machine in the terminal, drawing the screen to out
// and reading keys from stdin, until Escape or ctrl-c is pressed
func (driver *driverContext) StartTerminal(out io.Writer) error {
	events, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("opening keyboard: %w", err)
	}
	defer keyboard.Close()

	clock := time.NewTicker(time.Duration(driver.frameRate) * time.Millisecond)
	defer clock.Stop()

	return driver.runTerminal(events, clock.C, out)
}

func (driver *driverContext) runTerminal(events <-chan keyboard.KeyEvent, clock <-chan time.Time, out io.Writer) error {
	screen := &terminal{out: bufio.NewWriter(out)}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Err != nil {
				return ev.Err
			}
			switch {
			case ev.Key == keyboard.KeyEsc, ev.Key == keyboard.KeyCtrlC:
				return nil
			case ev.Key == keyboard.KeyTab:
				if err := driver.switchRom(); err != nil {
					return err
				}
			case ev.Rune != 0:
				driver.keypad.Press(ev.Rune)
			}
		case _, ok := <-clock:
			if !ok {
				return nil
			}
			driver.keypad.Apply(driver.machine)
			if err := driver.Frame(); err != nil {
				return err
			}
			if err := screen.render(driver.machine.Framebuffer(), driver.speaker.IsActive()); err != nil {
				return err
			}
		}
	}
}

// terminal draws frames as text, two pixel rows per line
type terminal struct {
	out   *bufio.Writer
	last  display.Frame
	sound bool
	drawn bool
}

var halfBlocks = map[[2]emit.Emit]rune{
	{emit.OFF, emit.OFF}: ' ',
	{emit.ON, emit.OFF}:  '▀',
	{emit.OFF, emit.ON}:  '▄',
	{emit.ON, emit.ON}:   '█',
}

// render redraws only when the frame or the buzzer changed
func (t *terminal) render(frame display.Frame, sound bool) error {
	if t.drawn && frame == t.last && sound == t.sound {
		return nil
	}
	if !t.drawn {
		t.out.WriteString(clearScreen)
	}
	t.out.WriteString(cursorHome)
	rows, cols := frame.WindowSize()
	for row := 0; row < rows; row += 2 {
		for col := 0; col < cols; col++ {
			top := frame.Get(uint8(row), uint8(col))
			bottom := frame.Get(uint8(row+1), uint8(col))
			t.out.WriteRune(halfBlocks[[2]emit.Emit{top, bottom}])
		}
		// raw mode, no newline translation
		t.out.WriteString("\r\n")
	}
	if sound {
		t.out.WriteString("[BEEP]")
	} else {
		t.out.WriteString("      ")
	}
	t.out.WriteString("\r\n")

	t.last, t.sound, t.drawn = frame, sound, true
	return t.out.Flush()
}
