package mocks

import (
	"github.com/bchadwic/chip8vm/internal/display"
	"github.com/gonutz/prototype/draw"
)

type TestMachine struct {
	// inputs
	In_Initialize int
	In_Load       [][]uint8
	In_Steps      int
	In_Ticks      int
	In_Keys       [16]bool

	// calls in order, "step" or "tick"
	In_Calls []string

	// outputs
	Out_LoadLimit    int   // bytes accepted by Load, 0 accepts everything
	Out_StepErr      error // returned once In_Steps exceeds Out_StepErrAfter
	Out_StepErrAfter int
	Out_Framebuffer  display.Frame
	Out_SoundActive  bool
}

func (tm *TestMachine) Initialize() {
	tm.In_Initialize++
}

func (tm *TestMachine) Load(rom []uint8) int {
	tm.In_Load = append(tm.In_Load, rom)
	if tm.Out_LoadLimit > 0 && len(rom) > tm.Out_LoadLimit {
		return tm.Out_LoadLimit
	}
	return len(rom)
}

func (tm *TestMachine) Step() error {
	tm.In_Steps++
	tm.In_Calls = append(tm.In_Calls, "step")
	if tm.Out_StepErr != nil && tm.In_Steps > tm.Out_StepErrAfter {
		return tm.Out_StepErr
	}
	return nil
}

func (tm *TestMachine) Tick() {
	tm.In_Ticks++
	tm.In_Calls = append(tm.In_Calls, "tick")
}

func (tm *TestMachine) Framebuffer() display.Frame {
	return tm.Out_Framebuffer
}

func (tm *TestMachine) SetKey(k uint8, pressed bool) {
	if int(k) < len(tm.In_Keys) {
		tm.In_Keys[k] = pressed
	}
}

func (tm *TestMachine) SoundActive() bool {
	return tm.Out_SoundActive
}

type Rect struct {
	X, Y, Width, Height int
	Color               draw.Color
}

type TestWindow struct {
	// inputs
	In_Close    bool
	In_FillRect []Rect
	In_DrawRect []Rect

	// outputs
	Out_KeysDown    map[draw.Key]bool
	Out_KeysPressed map[draw.Key]bool
	Out_Characters  string
}

func (tw *TestWindow) IsKeyDown(key draw.Key) bool {
	return tw.Out_KeysDown[key]
}

func (tw *TestWindow) WasKeyPressed(key draw.Key) bool {
	return tw.Out_KeysPressed[key]
}

func (tw *TestWindow) FillRect(x, y, width, height int, color draw.Color) {
	tw.In_FillRect = append(tw.In_FillRect, Rect{x, y, width, height, color})
}

func (tw *TestWindow) DrawRect(x, y, width, height int, color draw.Color) {
	tw.In_DrawRect = append(tw.In_DrawRect, Rect{x, y, width, height, color})
}

func (tw *TestWindow) Characters() string {
	return tw.Out_Characters
}

func (tw *TestWindow) Close() {
	tw.In_Close = true
}
