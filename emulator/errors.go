package emulator

import "errors"

// Errors returned by Step. Once one has been returned the emulator is
// halted and keeps returning it until Initialize is called.
var (
	ErrUnknownOpcode    = errors.New("opcode not found")
	ErrStackOverflow    = errors.New("stack overflow")
	ErrStackUnderflow   = errors.New("stack underflow")
	ErrPCOutOfRange     = errors.New("pc out of memory bounds")
	ErrMemoryOutOfRange = errors.New("memory access out of bounds")
)
