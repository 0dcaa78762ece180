package display

import (
	"github.com/bchadwic/chip8vm/internal/display/emit"
)

type Display interface {
	Clear()
	Get(row, col uint8) emit.Emit
	Set(e emit.Emit, row, col uint8)
	Toggle(row, col uint8) emit.Emit
	Pixels() []Pixel
	Lit() []Pixel
	WindowSize() (int, int)
}

const (
	ROWS, COLS = 32, 64
	SCALE      = 10
)

var _ Display = (*Frame)(nil)

// Frame is a monochrome framebuffer, row-major, index = col + row*COLS.
// It is a value type so a copy handed to a renderer is detached
// from the machine that produced it.
type Frame [ROWS * COLS]emit.Emit

type Pixel struct {
	Row, Col int
	Status   emit.Emit
}

func (f *Frame) Clear() {
	for i := range f {
		f[i] = emit.OFF
	}
}

func (f *Frame) Get(row, col uint8) emit.Emit {
	return f[index(row, col)]
}

func (f *Frame) Set(e emit.Emit, row, col uint8) {
	f[index(row, col)] = e
}

// Toggle flips the pixel at row, col and returns its previous state
func (f *Frame) Toggle(row, col uint8) emit.Emit {
	i := index(row, col)
	prev := f[i]
	f[i] = prev.Flip()
	return prev
}

// Pixels lists every cell of the frame with its coordinates
func (f *Frame) Pixels() []Pixel {
	pixels := make([]Pixel, ROWS*COLS)
	for i := 0; i < ROWS*COLS; i++ {
		pixels[i] = Pixel{Row: i / COLS, Col: i % COLS, Status: f[i]}
	}
	return pixels
}

// Lit returns only the pixels that are on
func (f *Frame) Lit() []Pixel {
	var lit []Pixel
	for _, pixel := range f.Pixels() {
		if pixel.Status == emit.ON {
			lit = append(lit, pixel)
		}
	}
	return lit
}

func (f *Frame) WindowSize() (int, int) {
	return ROWS, COLS
}

// coordinates wrap around both axes independently
func index(row, col uint8) int {
	return int(col)%COLS + (int(row)%ROWS)*COLS
}
