package emulator

import "fmt"

// Op identifies a decoded instruction. Its value is the opcode pattern
// with every operand bit cleared, e.g. 0x8004 for 8xy4.
type Op uint16

const (
	CLS         Op = 0x00E0 // clear screen
	RET         Op = 0x00EE // return from subroutine
	JMP         Op = 0x1000 // jump pc to address
	CALL        Op = 0x2000 // call subroutine
	SEQ_VX_KK   Op = 0x3000 // skip if vx eq kk
	SNE_VX_KK   Op = 0x4000 // skip if vx ne kk
	SEQ_VX_VY   Op = 0x5000 // skip if vx eq vy
	LD_VX_KK    Op = 0x6000 // load vx with kk
	ADD_VX_KK   Op = 0x7000 // add kk to vx
	LD_VX_VY    Op = 0x8000 // store vy in vx
	OR_VX_VY    Op = 0x8001 // bitwise vx or vy
	AND_VX_VY   Op = 0x8002 // bitwise vx and vy
	XOR_VX_VY   Op = 0x8003 // bitwise vx xor vy
	ADD_VX_VY   Op = 0x8004 // vx + vy, carry in vf
	SUB_VX_VY   Op = 0x8005 // vx - vy, not borrow in vf
	SHR_VX      Op = 0x8006 // vx >> 1, lsb in vf
	SUBN_VX_VY  Op = 0x8007 // vy - vx, not borrow in vf
	SHL_VX      Op = 0x800E // vx << 1, msb in vf
	SNE_VX_VY   Op = 0x9000 // skip if vx ne vy
	LD_I        Op = 0xA000 // load register i with nnn
	JMP_V0      Op = 0xB000 // jump to nnn + v0
	RND_VX_KK   Op = 0xC000 // random byte and kk into vx
	DRW_VX_VY_N Op = 0xD000 // draw n byte sprite at vx, vy
	SKP_VX      Op = 0xE09E // skip if key vx is pressed
	SKNP_VX     Op = 0xE0A1 // skip if key vx is not pressed
	LD_VX_DT    Op = 0xF007 // set vx to delay timer
	LD_VX_K     Op = 0xF00A // wait for key press, store in vx
	LD_DT_VX    Op = 0xF015 // set delay timer to vx
	LD_ST_VX    Op = 0xF018 // set sound timer to vx
	ADD_I_VX    Op = 0xF01E // i + vx, range overflow in vf
	LD_F_VX     Op = 0xF029 // set i to font glyph for vx
	LD_B_VX     Op = 0xF033 // BCD of vx at i, i+1, i+2
	LD_I_VX     Op = 0xF055 // store v0-vx at i
	LD_VX_I     Op = 0xF065 // load v0-vx from i
)

const (
	// niblet masks
	N1_MASK = 0xF000
	N2_MASK = 0x0F00
	N3_MASK = 0x00F0
	N4_MASK = 0x000F

	KK_MASK  = 0x00FF
	NNN_MASK = 0x0FFF
)

// Instruction is a decoded instruction word
type Instruction struct {
	Op   Op
	Word uint16

	X, Y uint8
	N    uint8
	KK   uint8
	NNN  uint16
}

// Decode splits an instruction word into its operation and operand fields.
// Words that match no operation return ErrUnknownOpcode.
func Decode(word uint16) (Instruction, error) {
	ins := Instruction{
		Word: word,
		X:    uint8((word & N2_MASK) >> 8),
		Y:    uint8((word & N3_MASK) >> 4),
		N:    uint8(word & N4_MASK),
		KK:   uint8(word & KK_MASK),
		NNN:  word & NNN_MASK,
	}

	switch word & N1_MASK {
	case 0x0000:
		switch Op(word) {
		case CLS, RET:
			ins.Op = Op(word)
			return ins, nil
		}
	case 0x8000:
		switch Op(word & 0xF00F) {
		case LD_VX_VY, OR_VX_VY, AND_VX_VY, XOR_VX_VY, ADD_VX_VY,
			SUB_VX_VY, SHR_VX, SUBN_VX_VY, SHL_VX:
			ins.Op = Op(word & 0xF00F)
			return ins, nil
		}
	case 0xE000:
		switch Op(word & 0xF0FF) {
		case SKP_VX, SKNP_VX:
			ins.Op = Op(word & 0xF0FF)
			return ins, nil
		}
	case 0xF000:
		switch Op(word & 0xF0FF) {
		case LD_VX_DT, LD_VX_K, LD_DT_VX, LD_ST_VX, ADD_I_VX,
			LD_F_VX, LD_B_VX, LD_I_VX, LD_VX_I:
			ins.Op = Op(word & 0xF0FF)
			return ins, nil
		}
	default:
		// the remaining categories are selected by the top nibble alone,
		// 5xy? and 9xy? ignore their low nibble
		ins.Op = Op(word & N1_MASK)
		return ins, nil
	}
	return ins, fmt.Errorf("%w: %04X", ErrUnknownOpcode, word)
}

// String disassembles the instruction
func (ins Instruction) String() string {
	switch ins.Op {
	case CLS:
		return "CLS"
	case RET:
		return "RET"
	case JMP:
		return fmt.Sprintf("JP 0x%03X", ins.NNN)
	case CALL:
		return fmt.Sprintf("CALL 0x%03X", ins.NNN)
	case SEQ_VX_KK:
		return fmt.Sprintf("SE V%X, 0x%02X", ins.X, ins.KK)
	case SNE_VX_KK:
		return fmt.Sprintf("SNE V%X, 0x%02X", ins.X, ins.KK)
	case SEQ_VX_VY:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case LD_VX_KK:
		return fmt.Sprintf("LD V%X, 0x%02X", ins.X, ins.KK)
	case ADD_VX_KK:
		return fmt.Sprintf("ADD V%X, 0x%02X", ins.X, ins.KK)
	case LD_VX_VY:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case OR_VX_VY:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case AND_VX_VY:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case XOR_VX_VY:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case ADD_VX_VY:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SUB_VX_VY:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case SHR_VX:
		return fmt.Sprintf("SHR V%X", ins.X)
	case SUBN_VX_VY:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case SHL_VX:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SNE_VX_VY:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LD_I:
		return fmt.Sprintf("LD I, 0x%03X", ins.NNN)
	case JMP_V0:
		return fmt.Sprintf("JP V0, 0x%03X", ins.NNN)
	case RND_VX_KK:
		return fmt.Sprintf("RND V%X, 0x%02X", ins.X, ins.KK)
	case DRW_VX_VY_N:
		return fmt.Sprintf("DRW V%X, V%X, %d", ins.X, ins.Y, ins.N)
	case SKP_VX:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SKNP_VX:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LD_VX_DT:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case LD_VX_K:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case LD_DT_VX:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case LD_ST_VX:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case ADD_I_VX:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LD_F_VX:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case LD_B_VX:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case LD_I_VX:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LD_VX_I:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}
	return fmt.Sprintf("DW 0x%04X", ins.Word)
}
