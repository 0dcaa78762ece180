package emulator

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/bchadwic/chip8vm/internal/display"
	"github.com/bchadwic/chip8vm/internal/display/emit"
)

const (
	REGISTERS  = 16
	MEM_SIZE   = 4096
	STACK_SIZE = 16
	KEYS       = 16

	FONT_ADDR = 0x000
	ROM_ADDR  = 0x200
	ROM_SIZE  = MEM_SIZE - ROM_ADDR

	// flag register
	VF = 0xF
)

var fonts = [...]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// glyph height in bytes
const FONT_HEIGHT = 5

// RandomSource supplies the random bytes for RND. *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

type Option func(*Emulator)

// WithRandom replaces the time seeded random source
func WithRandom(r RandomSource) Option {
	return func(em *Emulator) {
		em.rand = r
	}
}

// WithLogger traces every executed instruction to l
func WithLogger(l *log.Logger) Option {
	return func(em *Emulator) {
		em.logger = l
	}
}

// Emulator is the CHIP-8 machine. It is not safe for concurrent use;
// a single frame loop owns it.
type Emulator struct {
	registers [REGISTERS]uint8
	mem       [MEM_SIZE]uint8

	// stack pointer
	sp    uint8
	stack [STACK_SIZE]uint16

	// index register
	i uint16

	// program counter
	pc uint16

	// delay and sound timers
	dt, st uint8

	screen display.Frame
	keys   [KEYS]bool

	rand   RandomSource
	logger *log.Logger

	// first error returned by Step, cleared by Initialize
	fault  error
	cycles uint64
}

func Create(opts ...Option) *Emulator {
	em := &Emulator{}
	for _, opt := range opts {
		opt(em)
	}
	if em.rand == nil {
		em.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	em.Initialize()
	return em
}

// Initialize clears all machine state and installs the font table.
// It is safe to call repeatedly, e.g. before loading another rom.
func (em *Emulator) Initialize() {
	em.registers = [REGISTERS]uint8{}
	em.mem = [MEM_SIZE]uint8{}
	em.stack = [STACK_SIZE]uint16{}
	em.keys = [KEYS]bool{}
	em.screen.Clear()
	em.sp = 0
	em.i = 0
	em.pc = ROM_ADDR
	em.dt, em.st = 0, 0
	em.fault = nil
	em.cycles = 0

	copy(em.mem[FONT_ADDR:], fonts[:])
}

// Load copies rom into memory at ROM_ADDR. Anything past the end of
// memory is dropped; the number of bytes written is returned.
func (em *Emulator) Load(rom []uint8) int {
	n := copy(em.mem[ROM_ADDR:], rom)
	em.pc = ROM_ADDR
	return n
}

// Step runs a single fetch, decode, execute cycle
func (em *Emulator) Step() error {
	if em.fault != nil {
		return em.fault
	}
	inst, err := em.fetch()
	if err != nil {
		return em.halt(err)
	}
	ins, err := Decode(inst)
	if err != nil {
		return em.halt(fmt.Errorf("%w at 0x%03X", err, em.pc))
	}
	if em.logger != nil {
		em.logger.Printf("%06d 0x%03X %04X %s", em.cycles, em.pc, inst, ins)
	}
	if err := em.execute(ins); err != nil {
		return em.halt(fmt.Errorf("%s at 0x%03X: %w", ins, em.pc, err))
	}
	em.cycles++
	return nil
}

func (em *Emulator) halt(err error) error {
	em.fault = err
	return err
}

// Tick counts both timers down towards zero, called at 60Hz
func (em *Emulator) Tick() {
	if em.dt > 0 {
		em.dt--
	}
	if em.st > 0 {
		em.st--
	}
}

// Framebuffer returns a copy of the screen
func (em *Emulator) Framebuffer() display.Frame {
	return em.screen
}

// SetKey records the state of hex key k, keys above 0xF are ignored
func (em *Emulator) SetKey(k uint8, pressed bool) {
	if k < KEYS {
		em.keys[k] = pressed
	}
}

// SoundActive reports whether the buzzer should be sounding
func (em *Emulator) SoundActive() bool {
	return em.st > 0
}

// Cycles is the number of instructions executed since Initialize
func (em *Emulator) Cycles() uint64 {
	return em.cycles
}

// fetch retrieves two bytes located at pc
// if two bytes are not available within
// the available memory, error is returned
func (em *Emulator) fetch() (uint16, error) {
	if em.pc > MEM_SIZE-2 {
		return 0, fmt.Errorf("%w: 0x%X", ErrPCOutOfRange, em.pc)
	}
	p1 := em.mem[em.pc]
	p2 := em.mem[em.pc+1]
	return (uint16(p1) << 8) | uint16(p2), nil
}

func (em *Emulator) execute(ins Instruction) error {
	x, y := ins.X, ins.Y

	inc := true
	switch ins.Op {
	case CLS:
		em.cls()
	case RET:
		if err := em.ret(); err != nil {
			return err
		}
		inc = false
	case JMP:
		em.jmp(ins.NNN)
		inc = false
	case CALL:
		if err := em.call(ins.NNN); err != nil {
			return err
		}
		inc = false
	case SEQ_VX_KK:
		em.seqVxKK(x, ins.KK)
	case SNE_VX_KK:
		em.sneVxKK(x, ins.KK)
	case SEQ_VX_VY:
		em.seqVxVy(x, y)
	case LD_VX_KK:
		em.ldVxKK(x, ins.KK)
	case ADD_VX_KK:
		em.addVxKK(x, ins.KK)
	case LD_VX_VY:
		em.ldVxVy(x, y)
	case OR_VX_VY:
		em.orVxVy(x, y)
	case AND_VX_VY:
		em.andVxVy(x, y)
	case XOR_VX_VY:
		em.xorVxVy(x, y)
	case ADD_VX_VY:
		em.addVxVy(x, y)
	case SUB_VX_VY:
		em.subVxVy(x, y)
	case SHR_VX:
		em.shrVx(x)
	case SUBN_VX_VY:
		em.subnVxVy(x, y)
	case SHL_VX:
		em.shlVx(x)
	case SNE_VX_VY:
		em.sneVxVy(x, y)
	case LD_I:
		em.ldI(ins.NNN)
	case JMP_V0:
		em.jmpV0(ins.NNN)
		inc = false
	case RND_VX_KK:
		em.rndVxKK(x, ins.KK)
	case DRW_VX_VY_N:
		if err := em.drawVxVyN(x, y, ins.N); err != nil {
			return err
		}
	case SKP_VX:
		em.seqVxKey(x)
	case SKNP_VX:
		em.sneVxKey(x)
	case LD_VX_DT:
		em.ldVxDt(x)
	case LD_VX_K:
		inc = em.ldVxK(x)
	case LD_DT_VX:
		em.ldDtVx(x)
	case LD_ST_VX:
		em.ldStVx(x)
	case ADD_I_VX:
		em.addIVx(x)
	case LD_F_VX:
		em.ldFVx(x)
	case LD_B_VX:
		if err := em.ldBVx(x); err != nil {
			return err
		}
	case LD_I_VX:
		if err := em.ldIVx(x); err != nil {
			return err
		}
	case LD_VX_I:
		if err := em.ldVxI(x); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %04X", ErrUnknownOpcode, ins.Word)
	}
	if inc {
		em.pc += 2
	}
	return nil
}

// checks that size bytes starting at i lie within memory
func (em *Emulator) inBounds(size int) error {
	if int(em.i)+size > MEM_SIZE {
		return fmt.Errorf("%w: i=0x%X size=%d", ErrMemoryOutOfRange, em.i, size)
	}
	return nil
}

// clear screen
func (em *Emulator) cls() {
	em.screen.Clear()
}

// return from subroutine, resuming after the call instruction
func (em *Emulator) ret() error {
	if em.sp == 0 {
		return ErrStackUnderflow
	}
	em.sp--
	em.pc = em.stack[em.sp] + 2
	return nil
}

// jump program counter to instructed address
func (em *Emulator) jmp(addr uint16) {
	em.pc = addr
}

// call subroutine
func (em *Emulator) call(addr uint16) error {
	if em.sp == STACK_SIZE {
		return ErrStackOverflow
	}
	// save current position of program counter, then move stack pointer to next position
	em.stack[em.sp] = em.pc
	em.sp++
	em.pc = addr
	return nil
}

// 0x3XKK
// skip to next instruction set if register X is equal to KK
func (em *Emulator) seqVxKK(x, kk uint8) {
	if em.registers[x] == kk {
		em.pc += 2
	}
}

// 0x4XKK
// skip to next instruction set if register X is NOT equal to KK
func (em *Emulator) sneVxKK(x, kk uint8) {
	if em.registers[x] != kk {
		em.pc += 2
	}
}

// 0x5XY0
// skip to next instruction set if register X is equal to register Y
func (em *Emulator) seqVxVy(x, y uint8) {
	if em.registers[x] == em.registers[y] {
		em.pc += 2
	}
}

// 0x6XKK
// load register X with the value of KK
func (em *Emulator) ldVxKK(x, kk uint8) {
	em.registers[x] = kk
}

// 0x7XKK
// add the value of KK to register X, no carry
func (em *Emulator) addVxKK(x, kk uint8) {
	em.registers[x] += kk
}

// 0x8xy0
// store register Y value in register X
func (em *Emulator) ldVxVy(x, y uint8) {
	em.registers[x] = em.registers[y]
}

// 0x8xy1
func (em *Emulator) orVxVy(x, y uint8) {
	em.registers[x] |= em.registers[y]
}

// 0x8xy2
func (em *Emulator) andVxVy(x, y uint8) {
	em.registers[x] &= em.registers[y]
}

// 0x8xy3
func (em *Emulator) xorVxVy(x, y uint8) {
	em.registers[x] ^= em.registers[y]
}

// 0x8xy4
// add register X and Y, then store to register X
// VF is 1 on overflow, otherwise 0
func (em *Emulator) addVxVy(x, y uint8) {
	sum := uint16(em.registers[x]) + uint16(em.registers[y])
	em.registers[VF] = flag(sum > 0xFF)
	em.registers[x] = uint8(sum)
}

// 0x8xy5
// subtract register Y from X, then store to register X
// VF is 1 when X is greater than Y, otherwise 0
func (em *Emulator) subVxVy(x, y uint8) {
	vx, vy := em.registers[x], em.registers[y]
	em.registers[VF] = flag(vx > vy)
	em.registers[x] = vx - vy
}

// 0x8xy6
// store the LSB of register X in VF, then shift register X right by 1
func (em *Emulator) shrVx(x uint8) {
	vx := em.registers[x]
	em.registers[VF] = vx & 0x01
	em.registers[x] = vx >> 1
}

// 0x8xy7
// subtract register X from Y, then store to register X
// VF is 1 when Y is greater than X, otherwise 0
func (em *Emulator) subnVxVy(x, y uint8) {
	vx, vy := em.registers[x], em.registers[y]
	em.registers[VF] = flag(vy > vx)
	em.registers[x] = vy - vx
}

// 0x8xyE
// store the MSB of register X in VF, then shift register X left by 1
func (em *Emulator) shlVx(x uint8) {
	vx := em.registers[x]
	em.registers[VF] = vx >> 7
	em.registers[x] = vx << 1
}

// 0x9xy0
// skip to next instruction set if register X is NOT equal to register Y
func (em *Emulator) sneVxVy(x, y uint8) {
	if em.registers[x] != em.registers[y] {
		em.pc += 2
	}
}

// 0xAnnn
func (em *Emulator) ldI(addr uint16) {
	em.i = addr
}

// 0xBnnn
// set the program counter to addr (nnn) + register v0 value
func (em *Emulator) jmpV0(addr uint16) {
	em.pc = addr + uint16(em.registers[0])
}

// 0xCxkk
// set register X to the value of a random number bitwise and KK
func (em *Emulator) rndVxKK(x, kk uint8) {
	r := uint8(em.rand.Intn(0x100))
	em.registers[x] = r & kk
}

// 0xDxyn
// xor an n row sprite from memory at i onto the screen at register X and Y,
// each pixel wraps around the screen edges on its own
func (em *Emulator) drawVxVyN(x, y, n uint8) error {
	if err := em.inBounds(int(n)); err != nil {
		return err
	}
	startc := em.registers[x] % display.COLS
	startr := em.registers[y] % display.ROWS

	collision := false
	for rowi := uint8(0); rowi < n; rowi++ {
		row := em.mem[em.i+uint16(rowi)]
		// loop through each bit in a byte (8)
		for coli := uint8(0); coli < 8; coli++ {
			// read sprite bits left to right
			if row&(0b1000_0000>>coli) == 0 {
				continue
			}
			// Frame wraps the coordinates
			if em.screen.Toggle(startr+rowi, startc+coli) == emit.ON {
				collision = true
			}
		}
	}
	em.registers[VF] = flag(collision)
	return nil
}

// 0xEX9E
// skip the next instruction if the key at register X is pressed
func (em *Emulator) seqVxKey(x uint8) {
	if em.key(em.registers[x]) {
		em.pc += 2
	}
}

// 0xEXA1
// skip the next instruction if the key at register X is not pressed
func (em *Emulator) sneVxKey(x uint8) {
	if !em.key(em.registers[x]) {
		em.pc += 2
	}
}

// keys outside the keypad are never pressed
func (em *Emulator) key(k uint8) bool {
	return k < KEYS && em.keys[k]
}

// 0xFX07
func (em *Emulator) ldVxDt(x uint8) {
	em.registers[x] = em.dt
}

// 0xFX0A
// assign the lowest pressed key to register X. reports false while no
// key is down so pc stays on this instruction until one is
func (em *Emulator) ldVxK(x uint8) bool {
	for k := uint8(0); k < KEYS; k++ {
		if em.keys[k] {
			em.registers[x] = k
			return true
		}
	}
	return false
}

// 0xFX15
func (em *Emulator) ldDtVx(x uint8) {
	em.dt = em.registers[x]
}

// 0xFX18
func (em *Emulator) ldStVx(x uint8) {
	em.st = em.registers[x]
}

// 0xFX1E
// add i and value of register X, then store to i
// VF is 1 when the result leaves the 12 bit address space
func (em *Emulator) addIVx(x uint8) {
	sum := em.i + uint16(em.registers[x])
	em.registers[VF] = flag(sum > 0xFFF)
	em.i = sum
}

// 0xFX29
// point i at the font glyph for the digit in register X
func (em *Emulator) ldFVx(x uint8) {
	em.i = FONT_ADDR + uint16(em.registers[x])*FONT_HEIGHT
}

// 0xFX33
// store BCD representation of the value stored in register X
// in memory locations I, I+1, and I+2.
func (em *Emulator) ldBVx(x uint8) error {
	if err := em.inBounds(3); err != nil {
		return err
	}
	bcd := em.registers[x]
	em.mem[em.i] = bcd / 100
	em.mem[em.i+1] = (bcd / 10) % 10
	em.mem[em.i+2] = bcd % 10
	return nil
}

// 0xFX55
// store the values in registers 0-X to memory starting at i
func (em *Emulator) ldIVx(x uint8) error {
	if err := em.inBounds(int(x) + 1); err != nil {
		return err
	}
	copy(em.mem[em.i:], em.registers[:x+1])
	return nil
}

// 0xFX65
// store the values in memory starting at i into registers 0-X
func (em *Emulator) ldVxI(x uint8) error {
	if err := em.inBounds(int(x) + 1); err != nil {
		return err
	}
	copy(em.registers[:x+1], em.mem[em.i:])
	return nil
}

func flag(set bool) uint8 {
	if set {
		return 1
	}
	return 0
}
